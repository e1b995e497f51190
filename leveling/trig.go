package leveling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
)

// CurvatureRefraction is the coefficient of the combined curvature and
// refraction correction, in meters per squared kilometer.
const CurvatureRefraction = 0.0675

// TrigObservation is one target sighted from the instrument station.
type TrigObservation struct {
	Target string `json:"target" yaml:"target"`
	// HorizontalDistance in meters.
	HorizontalDistance float64 `json:"hd" yaml:"hd"`
	// Zenith angle in decimal degrees: 0 is straight up, 90 the horizon.
	Zenith       float64 `json:"zenith" yaml:"zenith"`
	TargetHeight float64 `json:"th" yaml:"th"`
}

// TrigResult is a reduced TrigObservation.
type TrigResult struct {
	TrigObservation
	Vertical   float64 `json:"vertical"`   // hd·tan(90° − z)
	Correction float64 `json:"correction"` // curvature and refraction
	Elevation  float64 `json:"elevation"`
}

// CurvatureCorrection returns 0.0675·(hd/1000)² in meters.
func CurvatureCorrection(hd float64) float64 {
	k := hd / 1000
	return CurvatureRefraction * k * k
}

// Trig reduces every observation taken from a station of elevation
// stationElev with instrument height hi. The result order matches obs.
//
// Errors:
//   - ErrInvalidReading naming the observation index for a negative or
//     non-finite distance, or a zenith angle outside (0°, 180°).
func Trig(stationElev, hi float64, obs []TrigObservation) ([]TrigResult, error) {
	if !finite(stationElev) || !finite(hi) {
		return nil, fmt.Errorf("%w: station elevation %g, instrument height %g", ErrInvalidReading, stationElev, hi)
	}
	out := make([]TrigResult, len(obs))
	for i, o := range obs {
		if err := o.validate(); err != nil {
			return nil, fmt.Errorf("observation %d (%s): %w", i, o.Target, err)
		}
		v := o.HorizontalDistance * math.Tan(angle.Radians(90-o.Zenith))
		cr := CurvatureCorrection(o.HorizontalDistance)
		out[i] = TrigResult{
			TrigObservation: o,
			Vertical:        v,
			Correction:      cr,
			Elevation:       stationElev + v + hi - o.TargetHeight + cr,
		}
	}
	return out, nil
}

func (o TrigObservation) validate() error {
	switch {
	case !finite(o.HorizontalDistance) || o.HorizontalDistance < 0:
		return fmt.Errorf("%w: horizontal distance %g", ErrInvalidReading, o.HorizontalDistance)
	case !finite(o.Zenith) || o.Zenith <= 0 || o.Zenith >= angle.HalfCircle:
		return fmt.Errorf("%w: zenith angle %g", ErrInvalidReading, o.Zenith)
	case !finite(o.TargetHeight):
		return fmt.Errorf("%w: target height %g", ErrInvalidReading, o.TargetHeight)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
