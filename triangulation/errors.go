package triangulation

import "errors"

var (
	// ErrGeometry is returned when angles or a baseline cannot form a triangle:
	// a non-positive angle, angles summing to 180° or more, or a degenerate base.
	ErrGeometry = errors.New("triangulation: impossible triangle geometry")

	// ErrReference is returned when a triangle rests on a station that has not
	// been resolved by an earlier triangle.
	ErrReference = errors.New("triangulation: unresolved reference station")

	// ErrDirection is returned when a direction label is neither left nor right.
	ErrDirection = errors.New("triangulation: unknown direction")
)
