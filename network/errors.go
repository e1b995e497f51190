package network

import "errors"

var (
	// ErrSingularMatrix is returned when the normal matrix cannot be inverted,
	// typically because a free station is not tied to the datum. It wraps
	// matrix.ErrSingular when the factorization detected it.
	ErrSingularMatrix = errors.New("network: singular normal matrix")

	// ErrDuplicateStation is returned when two stations share a name.
	ErrDuplicateStation = errors.New("network: duplicate station name")

	// ErrNoFixedStation is returned when no station holds the datum.
	ErrNoFixedStation = errors.New("network: no fixed station")

	// ErrInvalidStation is returned for an unnamed station or non-finite coordinates.
	ErrInvalidStation = errors.New("network: invalid station")

	// ErrInvalidObservation is returned for an unknown kind, a non-finite
	// value, or a standard deviation that is not strictly positive.
	ErrInvalidObservation = errors.New("network: invalid observation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)
