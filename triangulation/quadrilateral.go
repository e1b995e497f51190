package triangulation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/network"
)

// Default a-priori standard deviations of quadrilateral observations.
const (
	DefaultBaselineSD = 0.005        // meters
	DefaultAngleSD    = 1.0 / 3600.0 // decimal degrees (1")
)

// QuadAngles holds the eight angles of a braced quadrilateral ABCD with
// diagonals AC and BD, in decimal degrees. Each name lists the backsight,
// the instrument station and the foresight: BAC is observed at A between
// B and C.
type QuadAngles struct {
	BAC float64 `json:"bac" yaml:"bac"`
	CAD float64 `json:"cad" yaml:"cad"`
	CBD float64 `json:"cbd" yaml:"cbd"`
	DBA float64 `json:"dba" yaml:"dba"`
	DCA float64 `json:"dca" yaml:"dca"`
	ACB float64 `json:"acb" yaml:"acb"`
	ADB float64 `json:"adb" yaml:"adb"`
	BDC float64 `json:"bdc" yaml:"bdc"`
}

// Quadrilateral is a braced quadrilateral observed from the baseline A→B.
// Direction says on which side of A→B the stations C and D lie.
type Quadrilateral struct {
	A, B, C, D      string
	Start           Point   // coordinates of A; Start.Name is ignored
	Baseline        float64 // |AB| in meters
	BaselineAzimuth float64 // azimuth A→B in decimal degrees
	Direction       Direction
	Angles          QuadAngles

	// Zero selects DefaultBaselineSD / DefaultAngleSD.
	BaselineSD float64
	AngleSD    float64
}

// Closure is the angular check of one figure.
type Closure struct {
	Figure string  `json:"figure"`
	Sum    float64 `json:"sum"`
	Target float64 `json:"target"`
	// Misclosure is Sum − Target in degrees, MisclosureS in arcseconds.
	Misclosure  float64 `json:"misclosure"`
	MisclosureS float64 `json:"misclosure_seconds"`
}

// QuadAnalysis reports the geometric conditions of a braced quadrilateral:
// the eight angles sum to 360° and each of the four triangles cut by the
// diagonals sums to 180°.
type QuadAnalysis struct {
	Total     Closure    `json:"total"`
	Triangles [4]Closure `json:"triangles"`
}

func closure(figure string, sum, target float64) Closure {
	mis := sum - target
	return Closure{Figure: figure, Sum: sum, Target: target, Misclosure: mis, MisclosureS: angle.Seconds(mis)}
}

// Analyze checks the quadrilateral's angle conditions.
//
//	ABC: BAC + CBD + DBA + ACB
//	ABD: BAC + CAD + DBA + ADB
//	BCD: CBD + ACB + DCA + BDC
//	ACD: CAD + DCA + ADB + BDC
func (q Quadrilateral) Analyze() QuadAnalysis {
	a := q.Angles
	total := a.BAC + a.CAD + a.CBD + a.DBA + a.DCA + a.ACB + a.ADB + a.BDC
	return QuadAnalysis{
		Total: closure(q.A+q.B+q.C+q.D, total, angle.FullCircle),
		Triangles: [4]Closure{
			closure(q.A+q.B+q.C, a.BAC+a.CBD+a.DBA+a.ACB, angle.HalfCircle),
			closure(q.A+q.B+q.D, a.BAC+a.CAD+a.DBA+a.ADB, angle.HalfCircle),
			closure(q.B+q.C+q.D, a.CBD+a.ACB+a.DCA+a.BDC, angle.HalfCircle),
			closure(q.A+q.C+q.D, a.CAD+a.DCA+a.ADB+a.BDC, angle.HalfCircle),
		},
	}
}

func (q Quadrilateral) validate() error {
	names := []string{q.A, q.B, q.C, q.D}
	seen := make(map[string]bool, 4)
	for _, n := range names {
		if n == "" || seen[n] {
			return fmt.Errorf("%w: station names must be distinct and non-empty (%q)", ErrGeometry, names)
		}
		seen[n] = true
	}
	if !(q.Baseline > 0) {
		return fmt.Errorf("%w: baseline %g", ErrGeometry, q.Baseline)
	}
	if !q.Direction.valid() {
		return fmt.Errorf("%w: %v", ErrDirection, q.Direction)
	}
	return nil
}

// Approximate returns approximate coordinates for A, B (both fixed), C and
// D (free). B lies at Baseline along BaselineAzimuth from A; C is the
// intersection of triangle ABC (angles BAC and CBD+DBA) and D of triangle
// ABD (angles BAC+CAD and DBA).
//
// Errors:
//   - ErrGeometry for duplicate names, a non-positive baseline or an
//     impossible intersection; ErrDirection for an unknown Direction.
func (q Quadrilateral) Approximate() ([]network.Station, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	a := Point{Name: q.A, Easting: q.Start.Easting, Northing: q.Start.Northing}
	az := angle.Radians(q.BaselineAzimuth)
	b := Point{
		Name:     q.B,
		Easting:  a.Easting + q.Baseline*math.Sin(az),
		Northing: a.Northing + q.Baseline*math.Cos(az),
	}

	ang := q.Angles
	c, err := Intersect(a, b, ang.BAC, ang.CBD+ang.DBA, q.Direction)
	if err != nil {
		return nil, fmt.Errorf("approximating %s: %w", q.C, err)
	}
	d, err := Intersect(a, b, ang.BAC+ang.CAD, ang.DBA, q.Direction)
	if err != nil {
		return nil, fmt.Errorf("approximating %s: %w", q.D, err)
	}

	return []network.Station{
		{Name: q.A, Easting: a.Easting, Northing: a.Northing, Fixed: true},
		{Name: q.B, Easting: b.Easting, Northing: b.Northing, Fixed: true},
		{Name: q.C, Easting: c.Easting, Northing: c.Northing},
		{Name: q.D, Easting: d.Easting, Northing: d.Northing},
	}, nil
}

// Observations returns the baseline distance and the eight angles as
// clockwise network observations. For Right (C and D clockwise of A→B) the
// angle BAC is observed at A from B to C; for Left the backsight and
// foresight swap so that every angle stays clockwise.
func (q Quadrilateral) Observations() []network.Observation {
	dsd, asd := q.BaselineSD, q.AngleSD
	if !(dsd > 0) {
		dsd = DefaultBaselineSD
	}
	if !(asd > 0) {
		asd = DefaultAngleSD
	}
	ang := q.Angles
	obs := []network.Observation{network.Distance(q.A, q.B, q.Baseline, dsd)}
	for _, t := range []struct {
		at, from, to string
		value        float64
	}{
		{q.A, q.B, q.C, ang.BAC},
		{q.A, q.C, q.D, ang.CAD},
		{q.B, q.C, q.D, ang.CBD},
		{q.B, q.D, q.A, ang.DBA},
		{q.C, q.D, q.A, ang.DCA},
		{q.C, q.A, q.B, ang.ACB},
		{q.D, q.A, q.B, ang.ADB},
		{q.D, q.B, q.C, ang.BDC},
	} {
		from, to := t.from, t.to
		if q.Direction == Left {
			from, to = to, from
		}
		obs = append(obs, network.Angle(t.at, from, to, t.value, asd))
	}
	return obs
}

// QuadResult bundles the closure analysis with the network adjustment.
type QuadResult struct {
	Analysis    QuadAnalysis      `json:"analysis"`
	Approximate []network.Station `json:"approximate"`
	Adjusted    *network.Result   `json:"adjusted"`
}

// Adjust analyzes, approximates and adjusts the quadrilateral by least
// squares with A and B held fixed.
func (q Quadrilateral) Adjust(opts ...network.Option) (*QuadResult, error) {
	approx, err := q.Approximate()
	if err != nil {
		return nil, err
	}
	res, err := network.Adjust(approx, q.Observations(), opts...)
	return &QuadResult{Analysis: q.Analyze(), Approximate: approx, Adjusted: res}, err
}
