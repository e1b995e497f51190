package leveling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/leveling"
)

func TestCurvatureCorrection(t *testing.T) {
	assert.InDelta(t, 0, leveling.CurvatureCorrection(0), 1e-15)
	assert.InDelta(t, 0.0675, leveling.CurvatureCorrection(1000), 1e-12)
	assert.InDelta(t, 0.0675*4, leveling.CurvatureCorrection(2000), 1e-12)
}

func TestTrig(t *testing.T) {
	obs := []leveling.TrigObservation{
		{Target: "H", HorizontalDistance: 100, Zenith: 90, TargetHeight: 1.5},
		{Target: "U", HorizontalDistance: 100, Zenith: 45, TargetHeight: 1.5},
		{Target: "K", HorizontalDistance: 1000, Zenith: 88, TargetHeight: 2},
		{Target: "Z", HorizontalDistance: 0, Zenith: 30, TargetHeight: 0},
	}
	res, err := leveling.Trig(50, 1.5, obs)
	require.NoError(t, err)
	require.Len(t, res, len(obs))

	assert.Equal(t, "H", res[0].Target)
	assert.InDelta(t, 0, res[0].Vertical, 1e-9)
	assert.InDelta(t, 0.000675, res[0].Correction, 1e-12)
	assert.InDelta(t, 50.000675, res[0].Elevation, 1e-9)

	assert.InDelta(t, 100, res[1].Vertical, 1e-9)
	assert.InDelta(t, 150.000675, res[1].Elevation, 1e-9)

	assert.InDelta(t, 1000*math.Tan(2*math.Pi/180), res[2].Vertical, 1e-9)
	assert.InDelta(t, 50+34.92076949174773+1.5-2+0.0675, res[2].Elevation, 1e-9)

	assert.InDelta(t, 51.5, res[3].Elevation, 1e-12)
}

func TestTrig_Empty(t *testing.T) {
	res, err := leveling.Trig(10, 1.5, nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestTrig_Errors(t *testing.T) {
	cases := []struct {
		name string
		obs  leveling.TrigObservation
	}{
		{"negative-distance", leveling.TrigObservation{HorizontalDistance: -1, Zenith: 90}},
		{"nan-distance", leveling.TrigObservation{HorizontalDistance: math.NaN(), Zenith: 90}},
		{"zenith-zero", leveling.TrigObservation{HorizontalDistance: 10, Zenith: 0}},
		{"zenith-180", leveling.TrigObservation{HorizontalDistance: 10, Zenith: 180}},
		{"target-height-inf", leveling.TrigObservation{HorizontalDistance: 10, Zenith: 90, TargetHeight: math.Inf(1)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := leveling.Trig(0, 1.5, []leveling.TrigObservation{{HorizontalDistance: 1, Zenith: 90}, tc.obs})
			require.ErrorIs(t, err, leveling.ErrInvalidReading)
			assert.Contains(t, err.Error(), "observation 1")
		})
	}

	_, err := leveling.Trig(math.NaN(), 1.5, nil)
	require.ErrorIs(t, err, leveling.ErrInvalidReading)
}

// book is a two-setup run with one intermediate sight and one change point.
func book() []leveling.Reading {
	s := leveling.Sight
	return []leveling.Reading{
		{Station: "BM1", Backsight: s(1.500)},
		{Station: "P1", Intermediate: s(2.000)},
		{Station: "TP1", Foresight: s(0.800), Backsight: s(1.200)},
		{Station: "BM2", Foresight: s(1.400)},
	}
}

func TestDifferential(t *testing.T) {
	run, err := leveling.Differential(100, book())
	require.NoError(t, err)
	require.Len(t, run.Rows, 4)

	want := []struct{ hi, elev float64 }{
		{101.5, 100.0},
		{101.5, 99.5},
		{101.5, 100.7},
		{101.9, 100.5},
	}
	for i, w := range want {
		assert.InDelta(t, w.hi, run.Rows[i].HI, 1e-9, "row %d HI", i)
		assert.InDelta(t, w.elev, run.Rows[i].Elevation, 1e-9, "row %d elevation", i)
	}
	assert.InDelta(t, 2.7, run.SumBS, 1e-12)
	assert.InDelta(t, 2.2, run.SumFS, 1e-12)
	assert.InDelta(t, 100.5, run.End, 1e-9)
	assert.InDelta(t, 100.5, run.Check, 1e-9)
	assert.InDelta(t, 0, run.ArithmeticError(), 1e-9)
	assert.True(t, run.Closed(1e-9))
	assert.InDelta(t, 0.004, run.Misclosure(100.496), 1e-9)
}

func TestDifferential_Errors(t *testing.T) {
	s := leveling.Sight
	cases := []struct {
		name string
		rows []leveling.Reading
		want error
	}{
		{"too-short", []leveling.Reading{{Station: "BM1", Backsight: s(1)}}, leveling.ErrBooking},
		{"first-without-bs", []leveling.Reading{{Station: "BM1"}, {Station: "B", Foresight: s(1)}}, leveling.ErrBooking},
		{"first-with-fs", []leveling.Reading{{Station: "BM1", Backsight: s(1), Foresight: s(1)}, {Station: "B", Foresight: s(1)}}, leveling.ErrBooking},
		{"no-sight", []leveling.Reading{{Station: "BM1", Backsight: s(1)}, {Station: "X"}, {Station: "B", Foresight: s(1)}}, leveling.ErrBooking},
		{"is-and-fs", []leveling.Reading{{Station: "BM1", Backsight: s(1)}, {Station: "B", Intermediate: s(1), Foresight: s(1)}}, leveling.ErrBooking},
		{"bs-without-fs", []leveling.Reading{{Station: "BM1", Backsight: s(1)}, {Station: "X", Backsight: s(1), Intermediate: s(2)}, {Station: "B", Foresight: s(1)}}, leveling.ErrBooking},
		{"open-end", []leveling.Reading{{Station: "BM1", Backsight: s(1)}, {Station: "B", Intermediate: s(1)}}, leveling.ErrBooking},
		{"open-change-point", []leveling.Reading{{Station: "BM1", Backsight: s(1)}, {Station: "B", Foresight: s(1), Backsight: s(2)}}, leveling.ErrBooking},
		{"nan", []leveling.Reading{{Station: "BM1", Backsight: s(math.NaN())}, {Station: "B", Foresight: s(1)}}, leveling.ErrInvalidReading},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := leveling.Differential(100, tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := leveling.Differential(math.Inf(1), book())
	require.ErrorIs(t, err, leveling.ErrInvalidReading)
}
