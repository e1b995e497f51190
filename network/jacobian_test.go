package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/angle"
)

// TestLinearize_MatchesFiniteDifferences checks every analytic design-row
// entry against a central difference of the computed observation.
func TestLinearize_MatchesFiniteDifferences(t *testing.T) {
	stations := []Station{
		{Name: "A", Easting: 10, Northing: 20, Fixed: true},
		{Name: "B", Easting: 130, Northing: 45},
		{Name: "C", Easting: 70, Northing: 160},
		{Name: "D", Easting: -40, Northing: 95},
	}
	s, err := NewState(stations)
	require.NoError(t, err)
	cols, _ := s.Unknowns()

	obs := []Observation{
		Distance("A", "B", 1, 0.01),
		Distance("B", "C", 1, 0.01),
		Azimuth("C", "D", 1, 1),
		Azimuth("A", "C", 1, 1),
		Angle("B", "A", "C", 1, 1),
		Angle("C", "D", "B", 1, 1),
		Angle("D", "C", "A", 1, 1),
	}
	rows, skipped, err := s.linearize(obs, cols)
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, rows, len(obs))

	const h = 1e-6
	for ri, r := range rows {
		o := obs[r.obs]
		at, from, to, err := s.resolve(o)
		require.NoError(t, err)

		analytic := make(map[int]float64)
		for k, c := range r.cols {
			analytic[c] = r.vals[k]
		}

		for si, st := range stations {
			if st.Fixed {
				continue
			}
			for axis := 0; axis < 2; axis++ {
				plus, minus := s.Clone(), s.Clone()
				if axis == 0 {
					plus.stations[si].Easting += h
					minus.stations[si].Easting -= h
				} else {
					plus.stations[si].Northing += h
					minus.stations[si].Northing -= h
				}
				vp, ok := plus.computed(o, at, from, to)
				require.True(t, ok)
				vm, ok := minus.computed(o, at, from, to)
				require.True(t, ok)
				diff := vp - vm
				if o.Kind.Angular() {
					diff = angle.NormalizeRadians(diff)
				}
				numeric := diff / (2 * h)

				col := cols[si] + axis
				require.InDelta(t, numeric, analytic[col], 1e-6*math.Max(1, math.Abs(numeric)),
					"row %d (%s), station %s axis %d", ri, o, st.Name, axis)
			}
		}
	}
}

// TestLinearize_AngleRowIsAzimuthDifference pins the angle row to the
// difference of its two azimuth rows, with the instrument station receiving
// both contributions.
func TestLinearize_AngleRowIsAzimuthDifference(t *testing.T) {
	s, err := NewState([]Station{
		{Name: "F", Easting: 0, Northing: 100, Fixed: true},
		{Name: "P", Easting: 0, Northing: 0},
		{Name: "T", Easting: 100, Northing: 0},
	})
	require.NoError(t, err)
	cols, _ := s.Unknowns()

	rows, _, err := s.linearize([]Observation{
		Angle("P", "F", "T", 90, 1),
		Azimuth("P", "T", 90, 1),
		Azimuth("P", "F", 0, 1),
	}, cols)
	require.NoError(t, err)

	dense := func(r row) []float64 {
		out := make([]float64, 4)
		for k, c := range r.cols {
			out[c] += r.vals[k]
		}
		return out
	}
	ang, toT, toF := dense(rows[0]), dense(rows[1]), dense(rows[2])
	for k := range ang {
		require.InDelta(t, toT[k]-toF[k], ang[k], 1e-15, "col %d", k)
	}
	require.InDelta(t, 0, rows[0].misc, 1e-12)
}
