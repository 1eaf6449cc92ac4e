package hit

import (
	"fmt"
	"strings"
)

// Strategy decides which data points count as under a pointer.
type Strategy uint8

const (
	// Automatic defers to each series' preferred strategy.
	Automatic Strategy = iota
	// ExactMatch returns every point whose region contains the pointer.
	ExactMatch
	// ExactMatchTakeClosest returns the closest point whose region contains
	// the pointer.
	ExactMatchTakeClosest
	// NearestX returns the point closest along the X axis.
	NearestX
	// NearestY returns the point closest along the Y axis.
	NearestY
	// NearestXY returns the point closest in the plane.
	NearestXY
)

var strategyNames = [...]string{
	Automatic:             "automatic",
	ExactMatch:            "exact",
	ExactMatchTakeClosest: "exactclosest",
	NearestX:              "nearestx",
	NearestY:              "nearesty",
	NearestXY:             "nearestxy",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Strategy) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range strategyNames {
		if n == name {
			*s = Strategy(i)
			return nil
		}
	}
	return fmt.Errorf("unknown finding strategy %q", text)
}

// Purpose selects the radius used by exact strategies.
type Purpose uint8

const (
	// Hover uses a series' hover radius.
	Hover Purpose = iota
	// Selection uses a series' geometry radius.
	Selection
)

func (p Purpose) String() string {
	switch p {
	case Hover:
		return "hover"
	case Selection:
		return "selection"
	default:
		return fmt.Sprintf("Purpose(%d)", uint8(p))
	}
}

func (p *Purpose) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "hover":
		*p = Hover
	case "selection", "select":
		*p = Selection
	default:
		return fmt.Errorf("unknown purpose %q", text)
	}
	return nil
}
