package leveling

import "errors"

var (
	// ErrInvalidReading is returned for physically impossible observations:
	// a negative horizontal distance, a zenith angle outside (0°, 180°) or a
	// non-finite value.
	ErrInvalidReading = errors.New("leveling: invalid field reading")

	// ErrBooking is returned when a level book cannot be reduced: a first row
	// without a backsight, a row with no sight, or a run left open.
	ErrBooking = errors.New("leveling: inconsistent level book")
)
