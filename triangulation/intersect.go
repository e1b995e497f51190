package triangulation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
)

// Intersect locates C from the baseline A→B and the included angles at A
// (BAC) and B (ABC), both in decimal degrees:
//
//	γ     = 180 − α − β
//	|AC|  = |AB| · sin β / sin γ
//	azAC  = azAB ∓ α   (Left −, Right +)
//
// The returned point has no name.
//
// Errors:
//   - ErrDirection if dir is neither Left nor Right.
//   - ErrGeometry if either angle is ≤ 0, α+β ≥ 180, A and B coincide, or
//     the computed side is not positive.
func Intersect(a, b Point, angleA, angleB float64, dir Direction) (Point, error) {
	if !dir.valid() {
		return Point{}, fmt.Errorf("%w: %v", ErrDirection, dir)
	}
	if angleA <= 0 || angleB <= 0 {
		return Point{}, fmt.Errorf("%w: angles must be positive (%g, %g)", ErrGeometry, angleA, angleB)
	}
	if angleA+angleB >= angle.HalfCircle {
		return Point{}, fmt.Errorf("%w: angles sum to %g ≥ 180", ErrGeometry, angleA+angleB)
	}
	dE, dN := b.Easting-a.Easting, b.Northing-a.Northing
	base := math.Hypot(dE, dN)
	if base == 0 {
		return Point{}, fmt.Errorf("%w: baseline %s-%s has zero length", ErrGeometry, a.Name, b.Name)
	}

	alpha, beta := angle.Radians(angleA), angle.Radians(angleB)
	gamma := math.Pi - alpha - beta
	side := base * math.Sin(beta) / math.Sin(gamma)
	if !(side > 0) || math.IsInf(side, 0) {
		return Point{}, fmt.Errorf("%w: side %s-C is %g", ErrGeometry, a.Name, side)
	}

	azAC := math.Atan2(dE, dN) + dir.sign()*alpha

	return Point{
		Easting:  a.Easting + side*math.Sin(azAC),
		Northing: a.Northing + side*math.Cos(azAC),
	}, nil
}
