package ingest

import (
	"io"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/traverse"
	"github.com/katalvlaran/surveyor/triangulation"
)

// ReadLegs reads traverse legs from columns line (optional),
// direction (also azimuth, bearing or angle) and distance. Directions stay
// as booked; traverse.Compute parses them.
func ReadLegs(r io.Reader) ([]traverse.Leg, error) {
	t, err := readTable(r,
		[]column{col("direction", "azimuth", "bearing", "angle"), col("distance", "dist")},
		col("line", "leg"),
	)
	if err != nil {
		return nil, err
	}
	legs := make([]traverse.Leg, len(t.rows))
	for i := range t.rows {
		dir, err := t.text(i, "direction")
		if err != nil {
			return nil, err
		}
		d, err := t.number(i, "distance")
		if err != nil {
			return nil, err
		}
		legs[i] = traverse.Leg{Line: t.cell(i, "line"), Direction: dir, Distance: d}
	}
	return legs, nil
}

// ReadStations reads network stations from columns name, easting, northing
// and fixed (optional; 1/true/yes/fixed mark a control station).
func ReadStations(r io.Reader) ([]network.Station, error) {
	t, err := readTable(r,
		[]column{col("name", "station", "point"), col("easting", "e", "x"), col("northing", "n", "y")},
		col("fixed", "control"),
	)
	if err != nil {
		return nil, err
	}
	out := make([]network.Station, len(t.rows))
	for i := range t.rows {
		var s network.Station
		if s.Name, err = t.text(i, "name"); err != nil {
			return nil, err
		}
		if s.Easting, err = t.number(i, "easting"); err != nil {
			return nil, err
		}
		if s.Northing, err = t.number(i, "northing"); err != nil {
			return nil, err
		}
		if s.Fixed, err = t.flag(i, "fixed"); err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// ReadObservations reads network observations from columns type
// (distance, angle or azimuth), at, from, to, value and sd. Angular values
// are read in format f and their sd in arcseconds.
func ReadObservations(r io.Reader, f angle.Format) ([]network.Observation, error) {
	t, err := readTable(r,
		[]column{col("type", "kind"), col("from"), col("to"), col("value"), col("sd", "stddev", "sigma")},
		col("at"),
	)
	if err != nil {
		return nil, err
	}
	out := make([]network.Observation, len(t.rows))
	for i := range t.rows {
		kind, err := network.ParseKind(t.cell(i, "type"))
		if err != nil {
			return nil, t.errorf(i, "type", "%v", err)
		}
		o := network.Observation{Kind: kind}
		if kind == network.KindAngle {
			if o.At, err = t.text(i, "at"); err != nil {
				return nil, err
			}
		}
		if o.From, err = t.text(i, "from"); err != nil {
			return nil, err
		}
		if o.To, err = t.text(i, "to"); err != nil {
			return nil, err
		}
		if o.StdDev, err = t.number(i, "sd"); err != nil {
			return nil, err
		}
		if kind.Angular() {
			o.StdDev /= angle.SecondsPerDegree
			o.Value, err = t.degrees(i, "value", f)
		} else {
			o.Value, err = t.number(i, "value")
		}
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}

// ReadTriangles reads a triangulation chain from columns p1, p2, p3, a1,
// a2, a3 (in format f) and direction (left or right).
func ReadTriangles(r io.Reader, f angle.Format) ([]triangulation.Triangle, error) {
	t, err := readTable(r, []column{
		col("p1"), col("p2"), col("p3"),
		col("a1"), col("a2"), col("a3"),
		col("direction", "side"),
	})
	if err != nil {
		return nil, err
	}
	out := make([]triangulation.Triangle, len(t.rows))
	for i := range t.rows {
		var tri triangulation.Triangle
		if tri.P1, err = t.text(i, "p1"); err != nil {
			return nil, err
		}
		if tri.P2, err = t.text(i, "p2"); err != nil {
			return nil, err
		}
		if tri.P3, err = t.text(i, "p3"); err != nil {
			return nil, err
		}
		if tri.A1, err = t.degrees(i, "a1", f); err != nil {
			return nil, err
		}
		if tri.A2, err = t.degrees(i, "a2", f); err != nil {
			return nil, err
		}
		if tri.A3, err = t.degrees(i, "a3", f); err != nil {
			return nil, err
		}
		if tri.Direction, err = triangulation.ParseDirection(t.cell(i, "direction")); err != nil {
			return nil, t.errorf(i, "direction", "%v", err)
		}
		out[i] = tri
	}
	return out, nil
}

// ReadLevelBook reads a level book from columns station, bs, is
// (optional) and fs. Empty cells are sights not taken.
func ReadLevelBook(r io.Reader) ([]leveling.Reading, error) {
	t, err := readTable(r,
		[]column{col("station", "point"), col("bs", "backsight"), col("fs", "foresight")},
		col("is", "intermediate"),
	)
	if err != nil {
		return nil, err
	}
	out := make([]leveling.Reading, len(t.rows))
	for i := range t.rows {
		var rd leveling.Reading
		if rd.Station, err = t.text(i, "station"); err != nil {
			return nil, err
		}
		if rd.Backsight, err = t.optFloat(i, "bs"); err != nil {
			return nil, err
		}
		if t.has("is") {
			if rd.Intermediate, err = t.optFloat(i, "is"); err != nil {
				return nil, err
			}
		}
		if rd.Foresight, err = t.optFloat(i, "fs"); err != nil {
			return nil, err
		}
		out[i] = rd
	}
	return out, nil
}

// ReadTrigObservations reads trigonometric leveling targets from columns
// target, hd, zenith (also va, in format f) and th.
func ReadTrigObservations(r io.Reader, f angle.Format) ([]leveling.TrigObservation, error) {
	t, err := readTable(r, []column{
		col("target", "point"), col("hd", "distance"), col("zenith", "va"), col("th", "target height"),
	})
	if err != nil {
		return nil, err
	}
	out := make([]leveling.TrigObservation, len(t.rows))
	for i := range t.rows {
		var o leveling.TrigObservation
		if o.Target, err = t.text(i, "target"); err != nil {
			return nil, err
		}
		if o.HorizontalDistance, err = t.number(i, "hd"); err != nil {
			return nil, err
		}
		if o.Zenith, err = t.degrees(i, "zenith", f); err != nil {
			return nil, err
		}
		if o.TargetHeight, err = t.number(i, "th"); err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}
