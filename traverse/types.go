package traverse

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/surveyor/angle"
)

// Point is a named grid position.
type Point struct {
	Name     string  `json:"name" yaml:"name"`
	Easting  float64 `json:"easting" yaml:"easting"`
	Northing float64 `json:"northing" yaml:"northing"`
}

// Leg is one observed traverse leg as read from a field book. Direction is
// an azimuth, or an included angle when the pipeline runs with
// WithIncludedAngles; its text is read according to WithAngleFormat.
type Leg struct {
	Line      string  `json:"line" yaml:"line"`
	Direction string  `json:"direction" yaml:"direction"`
	Distance  float64 `json:"distance" yaml:"distance"`
}

// Adjustment is the outcome of distributing a linear misclosure.
type Adjustment struct {
	Latitudes      []float64 `json:"latitudes"`  // adjusted
	Departures     []float64 `json:"departures"` // adjusted
	LatCorrections []float64 `json:"lat_corrections"`
	DepCorrections []float64 `json:"dep_corrections"`
}

// Misclosure summarizes how far a traverse fails to close.
type Misclosure struct {
	Latitude  float64 `json:"latitude"`
	Departure float64 `json:"departure"`
	Linear    float64 `json:"linear"`
	Perimeter float64 `json:"perimeter"`
	// Precision is Perimeter/Linear ("1 in N"); +Inf for a perfect closure.
	Precision float64 `json:"-"`
}

// PrecisionRatio renders Precision the way field books do, e.g. "1:12500".
func (m Misclosure) PrecisionRatio() string {
	if m.Linear == 0 {
		return "1:∞"
	}
	return fmt.Sprintf("1:%.0f", m.Precision)
}

// MarshalJSON emits Precision only when finite, alongside the ratio text.
func (m Misclosure) MarshalJSON() ([]byte, error) {
	type plain Misclosure
	out := struct {
		plain
		Precision *float64 `json:"precision,omitempty"`
		Ratio     string   `json:"precision_ratio"`
	}{plain: plain(m), Ratio: m.PrecisionRatio()}
	if !math.IsInf(m.Precision, 0) && !math.IsNaN(m.Precision) {
		p := m.Precision
		out.Precision = &p
	}
	return json.Marshal(out)
}

// AngleKind selects how included angles turn the line of sight.
type AngleKind int

const (
	// Interior angles are measured clockwise from the back sight
	// (angles to the right).
	Interior AngleKind = iota

	// Exterior angles are measured on the outside of the loop.
	Exterior
)

// String implements fmt.Stringer.
func (k AngleKind) String() string {
	switch k {
	case Interior:
		return "interior"
	case Exterior:
		return "exterior"
	default:
		return fmt.Sprintf("AngleKind(%d)", int(k))
	}
}

// ParseAngleKind maps "interior" and "exterior" to an AngleKind. The empty
// string selects Interior.
func ParseAngleKind(s string) (AngleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "interior":
		return Interior, nil
	case "exterior":
		return Exterior, nil
	}
	return 0, fmt.Errorf("%w: unknown angle kind %q", ErrOptionViolation, s)
}

// AngularClosure reports the angle check of a closed theodolite traverse.
type AngularClosure struct {
	Measured    float64 `json:"measured"`    // Σ measured angles
	Theoretical float64 `json:"theoretical"` // (n−2)·180 interior, (n+2)·180 exterior
	Misclosure  float64 `json:"misclosure"`  // Measured − Theoretical
	Correction  float64 `json:"correction"`  // applied to every angle, −Misclosure/n
}

// Propagation is the result of PropagateAzimuths.
type Propagation struct {
	Azimuths  []float64 // one per leg, the first equals the initial azimuth
	Corrected []float64 // included angles after the closure correction
	// Closure is nil for open traverses.
	Closure *AngularClosure
}

// Method selects the linear adjustment applied by Compute.
type Method int

const (
	// MethodBowditch distributes the misclosure by the compass rule.
	MethodBowditch Method = iota

	// MethodNone leaves latitudes and departures as observed.
	MethodNone
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodBowditch:
		return "bowditch"
	case MethodNone:
		return "none"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m != MethodBowditch && m != MethodNone {
		return nil, fmt.Errorf("%w: unknown method %d", ErrOptionViolation, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMethod.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMethod maps "bowditch"/"compass" and "none" to a Method.
// The empty string selects MethodBowditch.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "bowditch", "compass":
		return MethodBowditch, nil
	case "none":
		return MethodNone, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrOptionViolation, s)
}

// Result is the full outcome of Compute.
type Result struct {
	Lines      []string   `json:"lines"`
	Azimuths   []float64  `json:"azimuths"` // decimal degrees, one per leg
	Distances  []float64  `json:"distances"`
	Latitudes  []float64  `json:"latitudes"`  // as observed
	Departures []float64  `json:"departures"` // as observed
	Adjustment Adjustment `json:"adjustment"`
	Points     []Point    `json:"points"` // len(legs)+1, Points[0] is the start
	Misclosure Misclosure `json:"misclosure"`
	// Angular is set when the traverse was computed from included angles
	// around a closed loop.
	Angular *AngularClosure `json:"angular,omitempty"`
	Method  Method          `json:"method"`
}

// Option configures Compute via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a Compute run.
type Options struct {
	// Format selects how Leg.Direction text is read.
	Format angle.Format
	// Method selects the linear adjustment.
	Method Method

	// Included-angle mode; Direction holds angles instead of azimuths.
	included       bool
	initialAzimuth float64
	kind           AngleKind
	closed         bool

	err error
}

// DefaultOptions returns DD.MMSS input with Bowditch adjustment.
func DefaultOptions() Options {
	return Options{Format: angle.FormatDMS, Method: MethodBowditch}
}

// WithAngleFormat selects how Leg.Direction text is interpreted.
func WithAngleFormat(f angle.Format) Option {
	return func(o *Options) {
		switch f {
		case angle.FormatDMS, angle.FormatDecimal:
			o.Format = f
		default:
			o.err = fmt.Errorf("%w: angle format %v", ErrOptionViolation, f)
		}
	}
}

// WithMethod selects the linear adjustment.
func WithMethod(m Method) Option {
	return func(o *Options) {
		switch m {
		case MethodBowditch, MethodNone:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: method %v", ErrOptionViolation, m)
		}
	}
}

// WithIncludedAngles switches Compute to theodolite mode: Leg.Direction
// holds the included angle at the leg's start station, and azimuths are
// propagated from initialAzimuth (decimal degrees). When closed is true the
// angular misclosure is checked and distributed.
func WithIncludedAngles(initialAzimuth float64, kind AngleKind, closed bool) Option {
	return func(o *Options) {
		if kind != Interior && kind != Exterior {
			o.err = fmt.Errorf("%w: angle kind %v", ErrOptionViolation, kind)
			return
		}
		o.included = true
		o.initialAzimuth = angle.Normalize(initialAzimuth)
		o.kind = kind
		o.closed = closed
	}
}
