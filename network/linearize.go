package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
)

// row is one linearized observation equation: the sparse design row, the
// misclosure l = observed − computed and the weight 1/σ².
type row struct {
	obs    int
	cols   []int
	vals   []float64
	misc   float64
	weight float64
}

// sight is the geometry of one directed line between two stations.
type sight struct {
	from, to int
	az, dist float64 // az in radians, [0, 2π)
}

func (s State) sight(from, to int) sight {
	dE := s.stations[to].Easting - s.stations[from].Easting
	dN := s.stations[to].Northing - s.stations[from].Northing
	az := math.Atan2(dE, dN)
	if az < 0 {
		az += 2 * math.Pi
	}
	return sight{from: from, to: to, az: az, dist: math.Hypot(dE, dN)}
}

// observedValue returns the observation in computation units (radians for
// angular kinds).
func observedValue(o Observation) float64 {
	if o.Kind.Angular() {
		return angle.Radians(o.Value)
	}
	return o.Value
}

// weightOf returns 1/σ², with angular σ converted to radians.
func weightOf(o Observation) float64 {
	sd := o.StdDev
	if o.Kind.Angular() {
		sd = angle.Radians(sd)
	}
	return 1 / (sd * sd)
}

// resolve maps the stations an observation references to indices.
func (s State) resolve(o Observation) (at, from, to int, err error) {
	look := func(role, name string) (int, error) {
		i, ok := s.index[name]
		if !ok {
			return 0, fmt.Errorf("unknown %s station %q", role, name)
		}
		return i, nil
	}
	if o.Kind == KindAngle {
		if at, err = look("at", o.At); err != nil {
			return
		}
	}
	if from, err = look("from", o.From); err != nil {
		return
	}
	to, err = look("to", o.To)
	return
}

// computed evaluates an observation at the current coordinates, in
// computation units. ok is false for zero-length sight lines.
func (s State) computed(o Observation, at, from, to int) (val float64, ok bool) {
	switch o.Kind {
	case KindDistance:
		l := s.sight(from, to)
		return l.dist, l.dist > 0
	case KindAzimuth:
		l := s.sight(from, to)
		return l.az, l.dist > 0
	case KindAngle:
		f, t := s.sight(at, from), s.sight(at, to)
		v := t.az - f.az
		if v < 0 {
			v += 2 * math.Pi
		}
		return v, f.dist > 0 && t.dist > 0
	}
	return 0, false
}

// linearize forms one design row per usable observation. Observations that
// reference unknown stations or degenerate sight lines are skipped; invalid
// observations are an error.
func (s State) linearize(obs []Observation, cols []int) ([]row, []Skip, error) {
	rows := make([]row, 0, len(obs))
	var skipped []Skip
	for i, o := range obs {
		if err := o.Validate(); err != nil {
			return nil, nil, fmt.Errorf("observation %d: %w", i, err)
		}
		at, from, to, err := s.resolve(o)
		if err != nil {
			skipped = append(skipped, Skip{Index: i, Reason: err.Error()})
			continue
		}
		calc, ok := s.computed(o, at, from, to)
		if !ok {
			skipped = append(skipped, Skip{Index: i, Reason: "zero-length sight line"})
			continue
		}

		r := row{obs: i, weight: weightOf(o), misc: observedValue(o) - calc}
		switch o.Kind {
		case KindDistance:
			l := s.sight(from, to)
			sin, cos := math.Sin(l.az), math.Cos(l.az)
			r.add(cols[from], -sin, -cos)
			r.add(cols[to], sin, cos)
		case KindAzimuth:
			r.misc = angle.NormalizeRadians(r.misc)
			r.addAzimuth(s.sight(from, to), cols, 1)
		case KindAngle:
			r.misc = angle.NormalizeRadians(r.misc)
			r.addAzimuth(s.sight(at, to), cols, 1)
			r.addAzimuth(s.sight(at, from), cols, -1)
		}
		rows = append(rows, r)
	}

	return rows, skipped, nil
}

// add accumulates (dE, dN) partials for the station whose ΔE column is col.
// Fixed stations (col < 0) contribute nothing.
func (r *row) add(col int, dE, dN float64) {
	if col < 0 {
		return
	}
	for k, c := range r.cols {
		if c == col {
			r.vals[k] += dE
			r.vals[k+1] += dN
			return
		}
	}
	r.cols = append(r.cols, col, col+1)
	r.vals = append(r.vals, dE, dN)
}

// addAzimuth adds sign × the partials of the azimuth along l:
//
//	∂az/∂E_to =  cos az / d    ∂az/∂N_to = −sin az / d
//	∂az/∂E_from = −cos az / d  ∂az/∂N_from = sin az / d
func (r *row) addAzimuth(l sight, cols []int, sign float64) {
	pe := sign * math.Cos(l.az) / l.dist
	pn := -sign * math.Sin(l.az) / l.dist
	r.add(cols[l.to], pe, pn)
	r.add(cols[l.from], -pe, -pn)
}
