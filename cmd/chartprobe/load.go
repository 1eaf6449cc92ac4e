package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/series"
	"github.com/xuri/excelize/v2"
)

// loadSeries reads a table whose first column holds x values and each
// further column the y values of one series. A non-numeric first row names
// the series.
func loadSeries(path, sheet string) ([]*series.XY, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%s: unsupported format", path)
	}
	if err != nil {
		return nil, err
	}
	xs, err := parseColumns(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return xs, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'
	return r.ReadAll()
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	return f.GetRows(sheet)
}

func parseColumns(rows [][]string) ([]*series.XY, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	var names []string
	if head := rows[0]; len(head) > 0 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(head[0]), 64); err != nil {
			names, rows = head, rows[1:]
		}
	}
	width := len(names)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < 2 {
		return nil, fmt.Errorf("need an x column and at least one y column")
	}

	xs := make([]*series.XY, width-1)
	for i := range xs {
		name := fmt.Sprintf("y%d", i+1)
		if i+1 < len(names) && strings.TrimSpace(names[i+1]) != "" {
			name = strings.TrimSpace(names[i+1])
		}
		xs[i] = series.New(name)
	}

	first := 1
	if names != nil {
		first = 2
	}
	for r, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		x, err := parseCell(row, 0, first+r)
		if err != nil {
			return nil, err
		}
		for c := 1; c < len(row); c++ {
			if strings.TrimSpace(row[c]) == "" {
				continue
			}
			y, err := parseCell(row, c, first+r)
			if err != nil {
				return nil, err
			}
			xs[c-1].Append(geom.Pt(x, y))
		}
	}
	return xs, nil
}

func parseCell(row []string, col, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		cell, _ := excelize.CoordinatesToCellName(col+1, line)
		return 0, fmt.Errorf("cell %s: %q is not a number", cell, row[col])
	}
	return v, nil
}
