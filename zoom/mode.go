// Package zoom interprets wheel and drag gestures as changes to axis limits.
package zoom

import (
	"fmt"
	"strings"
)

// Mode selects which axes respond to zoom and pan gestures.
type Mode uint8

func (m Mode) Has(x Mode) bool { return m&x == x }
func (m Mode) Any(x Mode) bool { return m&x != 0 }

const (
	PanX Mode = 1 << iota
	PanY
	ZoomX
	ZoomY

	None Mode = 0
	X         = PanX | ZoomX
	Y         = PanY | ZoomY
	Both      = X | Y
	Pan       = PanX | PanY
)

var modeNames = []struct {
	m    Mode
	name string
}{
	{None, "none"},
	{X, "x"},
	{Y, "y"},
	{Both, "both"},
	{PanX, "panx"},
	{PanY, "pany"},
	{Pan, "pan"},
	{ZoomX, "zoomx"},
	{ZoomY, "zoomy"},
}

func (m Mode) String() string {
	for _, n := range modeNames {
		if n.m == m {
			return n.name
		}
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText accepts the names returned by String, case insensitive.
func (m *Mode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for _, n := range modeNames {
		if n.name == s {
			*m = n.m
			return nil
		}
	}
	return fmt.Errorf("unknown zoom mode %q", text)
}

// Direction of a zoom step.
type Direction int8

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "in", "+":
		*d = In
	case "out", "-":
		*d = Out
	default:
		return fmt.Errorf("unknown zoom direction %q", text)
	}
	return nil
}
