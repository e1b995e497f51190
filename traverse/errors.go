package traverse

import "errors"

var (
	// ErrShape is returned when parallel inputs (azimuths, distances,
	// latitudes, departures) differ in length, or a pipeline has no legs.
	ErrShape = errors.New("traverse: mismatched input lengths")

	// ErrInvalidReading is returned for physically impossible field values:
	// negative distances, an upper stadia hair below the lower one, or a
	// non-positive stadia constant.
	ErrInvalidReading = errors.New("traverse: invalid field reading")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)
