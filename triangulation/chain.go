package triangulation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
)

// SolveChain resolves a chain of triangles in the given order.
//
// Implementation:
//   - Stage 1: Place the first triangle's P1 at start and its P2 at
//     baseDist along baseAz (decimal degrees).
//   - Stage 2: For every triangle, in order:
//     require P1 and P2 to be resolved (ErrReference otherwise), take base
//     length and azimuth from their coordinates, correct each angle by
//     −(ΣA−180)/3, solve both new sides by the law of sines and place P3
//     from P1. A P3 that was resolved earlier is overwritten.
//
// An empty triangle list yields an empty chain and no error.
//
// Errors:
//   - ErrReference naming the missing station.
//   - ErrDirection for a triangle whose Direction is neither Left nor Right.
//   - ErrGeometry for a non-positive base distance, coincident base
//     stations, or a corrected angle that is not positive.
//
// Complexity: O(t) for t triangles.
func SolveChain(start Point, baseDist, baseAz float64, triangles []Triangle) (*Chain, error) {
	c := newChain()
	if len(triangles) == 0 {
		return c, nil
	}
	if !(baseDist > 0) {
		return nil, fmt.Errorf("%w: base distance %g", ErrGeometry, baseDist)
	}

	first := triangles[0]
	az := angle.Radians(baseAz)
	c.put(Point{Name: first.P1, Easting: start.Easting, Northing: start.Northing})
	c.put(Point{
		Name:     first.P2,
		Easting:  start.Easting + baseDist*math.Sin(az),
		Northing: start.Northing + baseDist*math.Cos(az),
	})

	for i, tri := range triangles {
		p3, rep, err := solveTriangle(c, tri)
		if err != nil {
			return nil, fmt.Errorf("triangle %d (%s-%s-%s): %w", i, tri.P1, tri.P2, tri.P3, err)
		}
		c.put(p3)
		c.Reports = append(c.Reports, rep)
	}

	return c, nil
}

// solveTriangle places P3 of tri from the stations already in c.
func solveTriangle(c *Chain, tri Triangle) (Point, Report, error) {
	if !tri.Direction.valid() {
		return Point{}, Report{}, fmt.Errorf("%w: %v", ErrDirection, tri.Direction)
	}
	p1, ok := c.Station(tri.P1)
	if !ok {
		return Point{}, Report{}, fmt.Errorf("%w: %q", ErrReference, tri.P1)
	}
	p2, ok := c.Station(tri.P2)
	if !ok {
		return Point{}, Report{}, fmt.Errorf("%w: %q", ErrReference, tri.P2)
	}
	dE, dN := p2.Easting-p1.Easting, p2.Northing-p1.Northing
	base := math.Hypot(dE, dN)
	if base == 0 {
		return Point{}, Report{}, fmt.Errorf("%w: base %s-%s has zero length", ErrGeometry, tri.P1, tri.P2)
	}

	mis := tri.A1 + tri.A2 + tri.A3 - angle.HalfCircle
	corr := -mis / 3
	adj := [3]float64{tri.A1 + corr, tri.A2 + corr, tri.A3 + corr}
	for k, a := range adj {
		if !(a > 0) {
			return Point{}, Report{}, fmt.Errorf("%w: corrected angle A%d = %g", ErrGeometry, k+1, a)
		}
	}

	sin3 := math.Sin(angle.Radians(adj[2]))
	side13 := base * math.Sin(angle.Radians(adj[1])) / sin3
	side23 := base * math.Sin(angle.Radians(adj[0])) / sin3
	az13 := math.Atan2(dE, dN) + tri.Direction.sign()*angle.Radians(adj[0])

	p3 := Point{
		Name:     tri.P3,
		Easting:  p1.Easting + side13*math.Sin(az13),
		Northing: p1.Northing + side13*math.Cos(az13),
	}
	rep := Report{
		Triangle:          tri.P1 + "-" + tri.P2 + "-" + tri.P3,
		Misclosure:        mis,
		MisclosureSeconds: angle.Seconds(mis),
		Adjusted:          adj,
		Base:              base,
		Side13:            side13,
		Side23:            side23,
	}
	for k, a := range adj {
		rep.AdjustedDMS[k] = angle.Encode(a)
	}

	return p3, rep, nil
}
