// Chartprobe lays a chart out without a window and answers scaling and hit
// queries against it, from flags or an interactive prompt.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"dasa.cc/cartesian/chart"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var (
	width, height int
	sheet         string
	script        []string
	scriptFile    string
	zoomMode      string
	strategy      string
	speed         float64
	matchRatio    bool
)

func main() {
	log.SetPrefix("chartprobe: ")
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:   "chartprobe [data.csv|data.xlsx]",
		Short: "Probe chart scaling, zooming and hit testing",
		Long: `chartprobe loads series from a CSV or XLSX table, first column x and one
series per further column, lays them out in a virtual view and runs commands
against the chart. Settings default to the CHART_* environment variables.

Without -c or -f it starts an interactive prompt; type help for commands.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().IntVar(&width, "width", 800, "view width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 600, "view height in pixels")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet to read (default: active sheet)")
	rootCmd.Flags().StringArrayVarP(&script, "command", "c", nil, "command to run instead of prompting; repeatable")
	rootCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "file of commands to run instead of prompting")
	rootCmd.Flags().StringVar(&zoomMode, "zoom", "", "zoom mode: none, x, y, both, pan, panx, pany, zoomx, zoomy")
	rootCmd.Flags().StringVar(&strategy, "strategy", "", "finding strategy: automatic, exact, exactclosest, nearestx, nearesty, nearestxy")
	rootCmd.Flags().Float64Var(&speed, "speed", 1, "zoom speed")
	rootCmd.Flags().BoolVar(&matchRatio, "match-ratio", false, "keep y axes at the screen data ratio of the first x axis")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// config returns the environment configuration overridden by set flags.
func config(cmd *cobra.Command) (chart.Config, error) {
	cfg, err := chart.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("zoom") {
		if err := cfg.ZoomMode.UnmarshalText([]byte(zoomMode)); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("strategy") {
		if err := cfg.FindingStrategy.UnmarshalText([]byte(strategy)); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("speed") {
		cfg.ZoomSpeed = speed
	}
	if flags.Changed("match-ratio") {
		cfg.MatchRatio = matchRatio
	}
	cfg.Logger = log.Default()
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config(cmd)
	if err != nil {
		return err
	}
	p := newProbe(cfg, cmd.OutOrStdout())

	if len(args) == 1 {
		xs, err := loadSeries(args[0], sheet)
		if err != nil {
			return err
		}
		p.add(xs...)
	}
	if err := p.exec(fmt.Sprintf("size %d %d", width, height)); err != nil {
		return err
	}

	switch {
	case len(script) > 0:
		return runScript(p, strings.NewReader(strings.Join(script, "\n")))
	case scriptFile != "":
		f, err := os.Open(scriptFile)
		if err != nil {
			return err
		}
		defer f.Close()
		return runScript(p, f)
	}
	return repl(p)
}

// runScript runs commands line by line and stops at the first error.
func runScript(p *probe, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := p.exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

func repl(p *probe) error {
	tmp, err := os.CreateTemp("", "chartprobe")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "chartprobe: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      p.complete,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	log.SetOutput(rl.Stderr())
	p.out = rl.Stdout()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		switch line = strings.TrimSpace(line); line {
		case "exit", "quit":
			return nil
		}
		if err := p.exec(line); err != nil {
			log.Println(err)
		}
	}
}
