package network

import (
	"fmt"
	"math"
	"strings"
)

// Station is a named network point. Fixed stations hold the datum and are
// never corrected.
type Station struct {
	Name     string  `json:"name" yaml:"name"`
	Easting  float64 `json:"easting" yaml:"easting"`
	Northing float64 `json:"northing" yaml:"northing"`
	Fixed    bool    `json:"fixed" yaml:"fixed"`
}

// Kind tags an Observation.
type Kind int

const (
	// KindDistance is a horizontal distance From→To in meters.
	KindDistance Kind = iota + 1
	// KindAngle is the clockwise angle at At from From to To, decimal degrees.
	KindAngle
	// KindAzimuth is the grid bearing From→To, decimal degrees.
	KindAzimuth
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindAngle:
		return "angle"
	case KindAzimuth:
		return "azimuth"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "distance"/"dist", "angle" and "azimuth"/"bearing" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "dist":
		return KindDistance, nil
	case "angle":
		return KindAngle, nil
	case "azimuth", "bearing":
		return KindAzimuth, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidObservation, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindDistance, KindAngle, KindAzimuth:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("%w: kind %d", ErrInvalidObservation, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Angular reports whether observations of this kind are angles.
func (k Kind) Angular() bool { return k == KindAngle || k == KindAzimuth }

// Observation is one measured quantity. At is used by angles only.
// Value is meters for distances and decimal degrees otherwise; StdDev uses
// the same unit.
type Observation struct {
	Kind   Kind    `json:"kind"`
	At     string  `json:"at,omitempty"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Value  float64 `json:"value"`
	StdDev float64 `json:"sd"`
}

// Distance builds a distance observation.
func Distance(from, to string, meters, sd float64) Observation {
	return Observation{Kind: KindDistance, From: from, To: to, Value: meters, StdDev: sd}
}

// Angle builds a clockwise angle observation at station at, from the
// backsight from to the foresight to.
func Angle(at, from, to string, degrees, sd float64) Observation {
	return Observation{Kind: KindAngle, At: at, From: from, To: to, Value: degrees, StdDev: sd}
}

// Azimuth builds an azimuth observation.
func Azimuth(from, to string, degrees, sd float64) Observation {
	return Observation{Kind: KindAzimuth, From: from, To: to, Value: degrees, StdDev: sd}
}

// Validate reports ErrInvalidObservation for an unknown kind, a non-finite
// value, or a standard deviation that is not strictly positive.
func (o Observation) Validate() error {
	switch o.Kind {
	case KindDistance, KindAngle, KindAzimuth:
	default:
		return fmt.Errorf("%w: kind %v", ErrInvalidObservation, o.Kind)
	}
	if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
		return fmt.Errorf("%w: %s value %g", ErrInvalidObservation, o.Kind, o.Value)
	}
	if !(o.StdDev > 0) || math.IsInf(o.StdDev, 0) {
		return fmt.Errorf("%w: %s standard deviation %g", ErrInvalidObservation, o.Kind, o.StdDev)
	}
	return nil
}

// String renders the observation compactly, e.g. "angle B@A→C".
func (o Observation) String() string {
	if o.Kind == KindAngle {
		return fmt.Sprintf("%s %s@%s→%s", o.Kind, o.At, o.From, o.To)
	}
	return fmt.Sprintf("%s %s→%s", o.Kind, o.From, o.To)
}

// Skip records an observation left out of a pass.
type Skip struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Step is the outcome of one Iterate pass.
type Step struct {
	// Corrections holds ΔE, ΔN per free station in station order.
	Corrections []float64
	// MaxCorrection is max|Corrections|.
	MaxCorrection float64
	// Misclosures holds observed − computed per used observation (radians
	// for angular kinds).
	Misclosures []float64
	// Used lists the indices of observations that formed rows.
	Used []int
	// Skipped lists observations that could not be linearized.
	Skipped []Skip
}

// Residual is the adjusted-minus-observed difference of one observation.
type Residual struct {
	Index    int     `json:"index"`
	Kind     Kind    `json:"kind"`
	Observed float64 `json:"observed"`
	Adjusted float64 `json:"adjusted"`
	// Value is Adjusted − Observed in the observation's unit; angular
	// residuals are wrapped into (−180, 180].
	Value float64 `json:"value"`
	// Standardized is Value / StdDev.
	Standardized float64 `json:"standardized"`
}

// StationPrecision holds the a-posteriori standard deviations of a free station.
type StationPrecision struct {
	Name   string  `json:"name"`
	SigmaE float64 `json:"sigma_e"`
	SigmaN float64 `json:"sigma_n"`
}

// Result is the outcome of Adjust.
type Result struct {
	Stations    []Station  `json:"stations"`
	Iterations  int        `json:"iterations"`
	Converged   bool       `json:"converged"`
	Corrections []float64  `json:"corrections,omitempty"`
	Residuals   []Residual `json:"residuals,omitempty"`

	// VarianceFactor is σ0² = vᵀPv / (n − u); 1 (a-priori) when there is
	// no redundancy.
	VarianceFactor   float64            `json:"variance_factor"`
	DegreesOfFreedom int                `json:"dof"`
	Precision        []StationPrecision `json:"precision,omitempty"`
	Skipped          []Skip             `json:"skipped,omitempty"`
}

// Station returns the adjusted station called name.
func (r *Result) Station(name string) (Station, bool) {
	if r == nil {
		return Station{}, false
	}
	for _, s := range r.Stations {
		if s.Name == name {
			return s, true
		}
	}
	return Station{}, false
}
