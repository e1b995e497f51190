package angle

import "math"

// FullCircle and HalfCircle in degrees.
const (
	FullCircle = 360.0
	HalfCircle = 180.0
)

// Radians converts decimal degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / HalfCircle }

// Degrees converts radians to decimal degrees.
func Degrees(rad float64) float64 { return rad * HalfCircle / math.Pi }

// Seconds converts decimal degrees to arcseconds.
func Seconds(deg float64) float64 { return deg * SecondsPerDegree }

// Normalize folds deg into [0,360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, FullCircle)
	if r < 0 {
		r += FullCircle
	}
	if r >= FullCircle { // -tiny + 360 rounds to 360
		r = 0
	}
	return r
}

// NormalizeSigned folds deg into (−180,180].
func NormalizeSigned(deg float64) float64 {
	r := Normalize(deg)
	if r > HalfCircle {
		r -= FullCircle
	}
	return r
}

// NormalizeRadians folds rad into (−π,π].
func NormalizeRadians(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi {
		r -= 2 * math.Pi
	}
	return r
}

// Azimuth returns the grid azimuth, clockwise from north in [0,360), of the
// direction with easting delta dE and northing delta dN.
// A zero-length direction yields 0.
func Azimuth(dE, dN float64) float64 {
	return Normalize(Degrees(math.Atan2(dE, dN)))
}

// Back returns the reverse azimuth az ± 180, normalized.
func Back(az float64) float64 { return Normalize(az + HalfCircle) }
