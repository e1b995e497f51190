package job

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/ingest"
	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/report"
	"github.com/katalvlaran/surveyor/traverse"
	"github.com/katalvlaran/surveyor/triangulation"
)

// Outcome is the result of Run. Exactly one of the kind-specific fields is
// set.
type Outcome struct {
	Kind          Kind                      `json:"kind"`
	Name          string                    `json:"name,omitempty"`
	EPSG          int                       `json:"epsg,omitempty"`
	Traverse      *traverse.Result          `json:"traverse,omitempty"`
	Chain         *triangulation.Chain      `json:"chain,omitempty"`
	Network       *network.Result           `json:"network,omitempty"`
	Quadrilateral *triangulation.QuadResult `json:"quadrilateral,omitempty"`
	Trig          []leveling.TrigResult     `json:"trig,omitempty"`
	Leveling      *leveling.Run             `json:"leveling,omitempty"`
	// Misclosure is the leveling run's closing error when the job gives a
	// closing benchmark.
	Misclosure *float64 `json:"misclosure,omitempty"`

	// Observations are the network observations in decimal degrees, in the
	// order residuals refer to them.
	Observations []network.Observation `json:"-"`
	// Points are the planimetric stations of the result, for export.
	Points []report.Point `json:"points,omitempty"`
}

// Run executes the job.
//
// On error the Outcome may still hold partial results: a network whose
// normal equations are singular comes back with its stations unadjusted.
func (j *Job) Run() (*Outcome, error) {
	f, err := angle.ParseFormat(j.AngleFormat)
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	out := &Outcome{Kind: j.Kind, Name: j.Name, EPSG: j.EPSG}

	switch j.Kind {
	case KindTraverse:
		err = j.runTraverse(f, out)
	case KindTriangulation:
		err = j.runTriangulation(f, out)
	case KindNetwork:
		err = j.runNetwork(f, out)
	case KindQuadrilateral:
		err = j.runQuadrilateral(f, out)
	case KindTrigLeveling:
		err = j.runTrig(f, out)
	case KindLeveling:
		err = j.runLeveling(out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrKind, j.Kind)
	}
	if err != nil {
		return out, fmt.Errorf("job %s: %w", j.Kind, err)
	}
	return out, nil
}

// readCSV opens name and hands it to read.
func readCSV[T any](j *Job, name string, read func(io.Reader) ([]T, error)) ([]T, error) {
	fh, err := j.open(name)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	rows, err := read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

func (j *Job) runTraverse(f angle.Format, out *Outcome) error {
	sec := j.Traverse
	if sec == nil {
		return fmt.Errorf("%w: traverse", ErrSection)
	}
	legs := make([]traverse.Leg, 0, len(sec.Legs))
	for _, l := range sec.Legs {
		legs = append(legs, traverse.Leg{Line: l.Line, Direction: string(l.Direction), Distance: l.Distance})
	}
	if sec.LegsCSV != "" {
		more, err := readCSV(j, sec.LegsCSV, ingest.ReadLegs)
		if err != nil {
			return err
		}
		legs = append(legs, more...)
	}
	if len(legs) == 0 {
		return fmt.Errorf("%w: traverse has no legs", ErrSection)
	}

	method, err := traverse.ParseMethod(sec.Method)
	if err != nil {
		return err
	}
	opts := []traverse.Option{traverse.WithAngleFormat(f), traverse.WithMethod(method)}
	if in := sec.Included; in != nil {
		az, err := in.InitialAzimuth.Degrees(f)
		if err != nil {
			return fmt.Errorf("initial azimuth: %w", err)
		}
		kind, err := traverse.ParseAngleKind(in.Kind)
		if err != nil {
			return err
		}
		opts = append(opts, traverse.WithIncludedAngles(az, kind, in.Closed))
	}

	res, err := traverse.Compute(sec.Start, legs, opts...)
	if err != nil {
		return err
	}
	out.Traverse = res
	for _, p := range res.Points {
		out.Points = append(out.Points, report.Point{Name: p.Name, Easting: p.Easting, Northing: p.Northing})
	}
	return nil
}

func (j *Job) runTriangulation(f angle.Format, out *Outcome) error {
	sec := j.Triangulation
	if sec == nil {
		return fmt.Errorf("%w: triangulation", ErrSection)
	}
	tris := make([]triangulation.Triangle, 0, len(sec.Triangles))
	for i, t := range sec.Triangles {
		tri := triangulation.Triangle{P1: t.P1, P2: t.P2, P3: t.P3}
		var err error
		for k, a := range []struct {
			dst *float64
			src Angle
		}{{&tri.A1, t.A1}, {&tri.A2, t.A2}, {&tri.A3, t.A3}} {
			if *a.dst, err = a.src.Degrees(f); err != nil {
				return fmt.Errorf("triangle %d angle A%d: %w", i, k+1, err)
			}
		}
		if tri.Direction, err = triangulation.ParseDirection(t.Direction); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
		tris = append(tris, tri)
	}
	if sec.TrianglesCSV != "" {
		more, err := readCSV(j, sec.TrianglesCSV, func(r io.Reader) ([]triangulation.Triangle, error) {
			return ingest.ReadTriangles(r, f)
		})
		if err != nil {
			return err
		}
		tris = append(tris, more...)
	}
	if len(tris) == 0 {
		return fmt.Errorf("%w: triangulation has no triangles", ErrSection)
	}

	az, err := sec.BaseAzimuth.Degrees(f)
	if err != nil {
		return fmt.Errorf("base azimuth: %w", err)
	}
	chain, err := triangulation.SolveChain(sec.Start, sec.BaseDistance, az, tris)
	if err != nil {
		return err
	}
	out.Chain = chain
	for _, p := range chain.Stations {
		out.Points = append(out.Points, report.Point{Name: p.Name, Easting: p.Easting, Northing: p.Northing})
	}
	return nil
}

// observation converts a booked observation to decimal degrees and a
// standard deviation in the value's unit.
func observation(o Observation, f angle.Format) (network.Observation, error) {
	kind, err := network.ParseKind(o.Type)
	if err != nil {
		return network.Observation{}, err
	}
	out := network.Observation{Kind: kind, At: o.At, From: o.From, To: o.To, StdDev: o.SD}
	if kind.Angular() {
		out.StdDev = o.SD / angle.SecondsPerDegree
		out.Value, err = o.Value.Degrees(f)
		return out, err
	}
	if out.Value, err = strconv.ParseFloat(string(o.Value), 64); err != nil {
		return network.Observation{}, fmt.Errorf("%w: distance %q", network.ErrInvalidObservation, o.Value)
	}
	return out, nil
}

func (j *Job) networkInput(f angle.Format) ([]network.Station, []network.Observation, error) {
	sec := j.Network
	if sec == nil {
		return nil, nil, fmt.Errorf("%w: network", ErrSection)
	}
	stations := append([]network.Station(nil), sec.Stations...)
	if sec.StationsCSV != "" {
		more, err := readCSV(j, sec.StationsCSV, ingest.ReadStations)
		if err != nil {
			return nil, nil, err
		}
		stations = append(stations, more...)
	}

	obs := make([]network.Observation, 0, len(sec.Observations))
	for i, o := range sec.Observations {
		ob, err := observation(o, f)
		if err != nil {
			return nil, nil, fmt.Errorf("observation %d: %w", i, err)
		}
		obs = append(obs, ob)
	}
	if sec.ObservationsCSV != "" {
		more, err := readCSV(j, sec.ObservationsCSV, func(r io.Reader) ([]network.Observation, error) {
			return ingest.ReadObservations(r, f)
		})
		if err != nil {
			return nil, nil, err
		}
		obs = append(obs, more...)
	}
	if len(stations) == 0 {
		return nil, nil, fmt.Errorf("%w: network has no stations", ErrSection)
	}
	return stations, obs, nil
}

func (j *Job) runNetwork(f angle.Format, out *Outcome) error {
	stations, obs, err := j.networkInput(f)
	if err != nil {
		return err
	}
	var opts []network.Option
	if n := j.Network.MaxIterations; n != 0 {
		opts = append(opts, network.WithMaxIterations(n))
	}
	if t := j.Network.Tolerance; t != 0 {
		opts = append(opts, network.WithTolerance(t))
	}

	out.Observations = obs
	res, err := network.Adjust(stations, obs, opts...)
	out.Network = res
	if res != nil {
		out.Points = stationPoints(res.Stations)
	}
	return err
}

func stationPoints(st []network.Station) []report.Point {
	pts := make([]report.Point, len(st))
	for i, s := range st {
		pts[i] = report.Point{Name: s.Name, Easting: s.Easting, Northing: s.Northing, Fixed: s.Fixed}
	}
	return pts
}

func (j *Job) runQuadrilateral(f angle.Format, out *Outcome) error {
	sec := j.Quadrilateral
	if sec == nil {
		return fmt.Errorf("%w: quadrilateral", ErrSection)
	}
	dir, err := triangulation.ParseDirection(sec.Direction)
	if err != nil {
		return err
	}
	az, err := sec.BaselineAzimuth.Degrees(f)
	if err != nil {
		return fmt.Errorf("baseline azimuth: %w", err)
	}
	q := triangulation.Quadrilateral{
		A: sec.A, B: sec.B, C: sec.C, D: sec.D,
		Start:           sec.Start,
		Baseline:        sec.Baseline,
		BaselineAzimuth: az,
		Direction:       dir,
		BaselineSD:      sec.BaselineSD,
		AngleSD:         sec.AngleSD / angle.SecondsPerDegree,
	}
	a := sec.Angles
	for _, p := range []struct {
		name string
		dst  *float64
		src  Angle
	}{
		{"bac", &q.Angles.BAC, a.BAC}, {"cad", &q.Angles.CAD, a.CAD},
		{"cbd", &q.Angles.CBD, a.CBD}, {"dba", &q.Angles.DBA, a.DBA},
		{"dca", &q.Angles.DCA, a.DCA}, {"acb", &q.Angles.ACB, a.ACB},
		{"adb", &q.Angles.ADB, a.ADB}, {"bdc", &q.Angles.BDC, a.BDC},
	} {
		if *p.dst, err = p.src.Degrees(f); err != nil {
			return fmt.Errorf("angle %s: %w", p.name, err)
		}
	}

	out.Observations = q.Observations()
	res, err := q.Adjust()
	out.Quadrilateral = res
	if res != nil && res.Adjusted != nil {
		out.Points = stationPoints(res.Adjusted.Stations)
	}
	return err
}

func (j *Job) runTrig(f angle.Format, out *Outcome) error {
	sec := j.TrigLeveling
	if sec == nil {
		return fmt.Errorf("%w: trig_leveling", ErrSection)
	}
	obs := make([]leveling.TrigObservation, 0, len(sec.Targets))
	for i, t := range sec.Targets {
		z, err := t.Zenith.Degrees(f)
		if err != nil {
			return fmt.Errorf("target %d zenith: %w", i, err)
		}
		obs = append(obs, leveling.TrigObservation{Target: t.Target, HorizontalDistance: t.HD, Zenith: z, TargetHeight: t.TargetHeight})
	}
	if sec.TargetsCSV != "" {
		more, err := readCSV(j, sec.TargetsCSV, func(r io.Reader) ([]leveling.TrigObservation, error) {
			return ingest.ReadTrigObservations(r, f)
		})
		if err != nil {
			return err
		}
		obs = append(obs, more...)
	}
	if len(obs) == 0 {
		return fmt.Errorf("%w: trig_leveling has no targets", ErrSection)
	}

	res, err := leveling.Trig(sec.StationElevation, sec.InstrumentHeight, obs)
	if err != nil {
		return err
	}
	out.Trig = res
	return nil
}

func (j *Job) runLeveling(out *Outcome) error {
	sec := j.Leveling
	if sec == nil {
		return fmt.Errorf("%w: leveling", ErrSection)
	}
	book := append([]leveling.Reading(nil), sec.Readings...)
	if sec.BookCSV != "" {
		more, err := readCSV(j, sec.BookCSV, ingest.ReadLevelBook)
		if err != nil {
			return err
		}
		book = append(book, more...)
	}

	run, err := leveling.Differential(sec.Start, book)
	if err != nil {
		return err
	}
	out.Leveling = run
	if sec.Close != nil {
		m := run.Misclosure(*sec.Close)
		out.Misclosure = &m
	}
	return nil
}
