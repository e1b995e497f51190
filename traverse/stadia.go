package traverse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
)

// DefaultStadiaConstant is the multiplying constant of most modern
// instruments.
const DefaultStadiaConstant = 100.0

// Stadia returns the horizontal distance read tacheometrically from the
// upper and lower stadia hairs:
//
//	d = k · (upper − lower) · cos²(verticalAngle)
//
// verticalAngle is in decimal degrees above the horizon.
//
// Errors:
//   - ErrInvalidReading if k ≤ 0 or upper < lower.
func Stadia(k, upper, lower, verticalAngle float64) (float64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("%w: stadia constant %g", ErrInvalidReading, k)
	}
	if upper < lower {
		return 0, fmt.Errorf("%w: upper hair %g below lower hair %g", ErrInvalidReading, upper, lower)
	}
	c := math.Cos(angle.Radians(verticalAngle))

	return k * (upper - lower) * c * c, nil
}
