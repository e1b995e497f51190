package triangulation

import (
	"fmt"
	"strings"
)

// Point is a named grid position.
type Point struct {
	Name     string  `json:"name" yaml:"name"`
	Easting  float64 `json:"easting" yaml:"easting"`
	Northing float64 `json:"northing" yaml:"northing"`
}

// Direction is the side of the directed baseline a new station lies on.
type Direction int

const (
	// Left: anti-clockwise from the baseline.
	Left Direction = iota
	// Right: clockwise from the baseline.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "left"/"l"/"anticlockwise"/"ccw" and
// "right"/"r"/"clockwise"/"cw", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "anticlockwise", "anti-clockwise", "ccw":
		return Left, nil
	case "right", "r", "clockwise", "cw":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrDirection, s)
}

// valid reports whether d is Left or Right.
func (d Direction) valid() bool { return d == Left || d == Right }

// sign returns −1 for Left and +1 for Right.
func (d Direction) sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Triangle is one observed triangle of a chain. P1–P2 is the base, P3 the
// new station; A1, A2, A3 are the observed angles at P1, P2, P3 in decimal
// degrees.
type Triangle struct {
	P1, P2, P3 string
	A1, A2, A3 float64
	Direction  Direction
}

// Report describes how one triangle of a chain was solved.
type Report struct {
	Triangle string `json:"triangle"` // "P1-P2-P3"
	// Misclosure is ΣA − 180 in degrees; MisclosureSeconds the same in arcseconds.
	Misclosure        float64    `json:"misclosure"`
	MisclosureSeconds float64    `json:"misclosure_seconds"`
	Adjusted          [3]float64 `json:"adjusted"`     // corrected A1, A2, A3
	AdjustedDMS       [3]string  `json:"adjusted_dms"` // the same, DD.MMSS text
	Base              float64    `json:"base"`         // P1–P2 from resolved coordinates
	Side13            float64    `json:"side13"`
	Side23            float64    `json:"side23"`
}

// Chain holds the stations resolved by SolveChain in resolution order.
type Chain struct {
	Stations []Point  `json:"stations"`
	Reports  []Report `json:"reports"`
	index    map[string]int
}

func newChain() *Chain {
	return &Chain{index: make(map[string]int)}
}

// Station returns the resolved station called name.
func (c *Chain) Station(name string) (Point, bool) {
	if c == nil {
		return Point{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Point{}, false
	}
	return c.Stations[i], true
}

// Len returns the number of resolved stations.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Stations)
}

// put stores p, overwriting an earlier resolution of the same name in place.
func (c *Chain) put(p Point) {
	if i, ok := c.index[p.Name]; ok {
		c.Stations[i] = p
		return
	}
	c.index[p.Name] = len(c.Stations)
	c.Stations = append(c.Stations, p)
}
