package traverse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/traverse"
)

const tol = 1e-9

func TestReduce(t *testing.T) {
	lat, dep, err := traverse.Reduce([]float64{0, 90, 180, 270, 45}, []float64{10, 10, 10, 10, math.Sqrt2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{10, 0, -10, 0, 1}, lat, tol)
	assert.InDeltaSlice(t, []float64{0, 10, 0, -10, 1}, dep, tol)

	_, _, err = traverse.Reduce([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, traverse.ErrShape)
}

func TestReduceEncoded(t *testing.T) {
	lat, dep, err := traverse.ReduceEncoded([]string{"90.0000", "180.0000"}, []float64{5, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, -5}, lat, tol)
	assert.InDeltaSlice(t, []float64{5, 0}, dep, tol)

	_, _, err = traverse.ReduceEncoded([]string{"90.0000", "x"}, []float64{5, 5})
	require.ErrorIs(t, err, angle.ErrFormat)
	assert.Contains(t, err.Error(), "index 1")

	_, _, err = traverse.ReduceEncoded([]string{"90.0000"}, nil)
	require.ErrorIs(t, err, traverse.ErrShape)
}

func TestChain(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		lat := make([]float64, n)
		dep := make([]float64, n)
		for i := range lat {
			lat[i], dep[i] = float64(i), -float64(i)
		}
		pts, err := traverse.Chain(500, 1000, lat, dep)
		require.NoError(t, err)
		require.Len(t, pts, n+1)
		assert.Equal(t, traverse.Point{Easting: 500, Northing: 1000}, pts[0])
	}

	_, err := traverse.Chain(0, 0, []float64{1}, nil)
	require.ErrorIs(t, err, traverse.ErrShape)
}

func TestBowditch_ClosedIsUnchanged(t *testing.T) {
	d := []float64{100, 100, 100, 100}
	lat, dep, err := traverse.Reduce([]float64{45, 135, 225, 315}, d)
	require.NoError(t, err)

	adj, err := traverse.Bowditch(d, lat, dep)
	require.NoError(t, err)
	for i := range d {
		assert.InDelta(t, 0, adj.LatCorrections[i], tol)
		assert.InDelta(t, 0, adj.DepCorrections[i], tol)
	}
}

func TestBowditch_CorrectionsCancelMisclosure(t *testing.T) {
	d := []float64{120.5, 80.25, 143.1, 99.9}
	lat := []float64{100.02, -30.01, -95.4, 25.35}
	dep := []float64{66.7, 74.2, -107.1, -33.77}

	adj, err := traverse.Bowditch(d, lat, dep)
	require.NoError(t, err)

	var sumCL, sumCD, sumL, sumD float64
	for i := range d {
		sumCL += adj.LatCorrections[i]
		sumCD += adj.DepCorrections[i]
		sumL += adj.Latitudes[i]
		sumD += adj.Departures[i]
	}
	misLat := lat[0] + lat[1] + lat[2] + lat[3]
	misDep := dep[0] + dep[1] + dep[2] + dep[3]
	assert.InDelta(t, -misLat, sumCL, tol)
	assert.InDelta(t, -misDep, sumCD, tol)
	assert.InDelta(t, 0, sumL, tol)
	assert.InDelta(t, 0, sumD, tol)

	// Inputs are not mutated.
	assert.Equal(t, 100.02, lat[0])
}

func TestBowditch_ZeroPerimeter(t *testing.T) {
	adj, err := traverse.Bowditch([]float64{0, 0}, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, adj.Latitudes)
	assert.Equal(t, []float64{3, 4}, adj.Departures)
	assert.Equal(t, []float64{0, 0}, adj.LatCorrections)

	_, err = traverse.Bowditch([]float64{1}, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, traverse.ErrShape)
}

func TestMisclose(t *testing.T) {
	m, err := traverse.Misclose([]float64{300, 400}, []float64{0.03, 0}, []float64{0, 0.04})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, m.Linear, tol)
	assert.InDelta(t, 700, m.Perimeter, tol)
	assert.InDelta(t, 14000, m.Precision, 1e-6)
	assert.Equal(t, "1:14000", m.PrecisionRatio())

	m, err = traverse.Misclose([]float64{1}, []float64{0}, []float64{0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(m.Precision, 1))
	assert.Equal(t, "1:∞", m.PrecisionRatio())
}

func TestPropagateAzimuths(t *testing.T) {
	// Square walked clockwise: interior angles of 90°, one with a 20" error.
	p := traverse.PropagateAzimuths(90, []float64{90, 90, 90, 90 + 20.0/3600}, traverse.Interior, true)
	require.NotNil(t, p.Closure)
	assert.InDelta(t, 360, p.Closure.Theoretical, tol)
	assert.InDelta(t, 20.0/3600, p.Closure.Misclosure, tol)
	assert.InDelta(t, -5.0/3600, p.Closure.Correction, tol)
	assert.InDelta(t, 90-5.0/3600, p.Corrected[0], tol)
	assert.InDelta(t, 360, p.Corrected[0]+p.Corrected[1]+p.Corrected[2]+p.Corrected[3], tol)
	assert.InDelta(t, 90, p.Azimuths[0], tol)
	assert.InDelta(t, 360-5.0/3600, p.Azimuths[1], 1e-9)

	p = traverse.PropagateAzimuths(90, []float64{90, 90, 90, 90}, traverse.Interior, true)
	assert.InDeltaSlice(t, []float64{90, 0, 270, 180}, p.Azimuths, 1e-9)

	// Exterior angles of the same loop are 270°.
	p = traverse.PropagateAzimuths(90, []float64{270, 270, 270, 270}, traverse.Exterior, true)
	assert.InDelta(t, 1080, p.Closure.Theoretical, tol)
	assert.InDelta(t, 0, p.Closure.Misclosure, tol)
	assert.InDeltaSlice(t, []float64{90, 0, 270, 180}, p.Azimuths, 1e-6)

	open := traverse.PropagateAzimuths(10, []float64{180}, traverse.Interior, false)
	assert.Nil(t, open.Closure)
	assert.Equal(t, []float64{10}, open.Azimuths)

	assert.Empty(t, traverse.PropagateAzimuths(0, nil, traverse.Interior, true).Azimuths)
}

func TestStadia(t *testing.T) {
	d, err := traverse.Stadia(traverse.DefaultStadiaConstant, 1.5, 0.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 100, d, tol)

	d, err = traverse.Stadia(100, 1.5, 0.5, 60)
	require.NoError(t, err)
	assert.InDelta(t, 25, d, 1e-9)

	_, err = traverse.Stadia(100, 0.5, 1.5, 0)
	require.ErrorIs(t, err, traverse.ErrInvalidReading)
	_, err = traverse.Stadia(0, 1.5, 0.5, 0)
	require.ErrorIs(t, err, traverse.ErrInvalidReading)
}

func TestCompute_ClosedSquare(t *testing.T) {
	legs := []traverse.Leg{
		{Line: "A-B", Direction: "45", Distance: 100},
		{Line: "B-C", Direction: "135", Distance: 100},
		{Line: "C-D", Direction: "225", Distance: 100},
		{Line: "D-A", Direction: "315", Distance: 100},
	}
	res, err := traverse.Compute(traverse.Point{Name: "A"}, legs, traverse.WithAngleFormat(angle.FormatDecimal))
	require.NoError(t, err)

	require.Len(t, res.Points, 5)
	last := res.Points[4]
	assert.Equal(t, "A", last.Name)
	assert.InDelta(t, 0, last.Easting, 1e-6)
	assert.InDelta(t, 0, last.Northing, 1e-6)
	assert.InDelta(t, 0, res.Misclosure.Linear, 1e-9)
	assert.Equal(t, []string{"A", "B", "C", "D", "A"},
		[]string{res.Points[0].Name, res.Points[1].Name, res.Points[2].Name, res.Points[3].Name, res.Points[4].Name})
	assert.Nil(t, res.Angular)
}

func TestCompute_BowditchClosesTraverse(t *testing.T) {
	legs := []traverse.Leg{
		{Line: "1-2", Direction: "10.3015", Distance: 150.12},
		{Line: "2-3", Direction: "120.1530", Distance: 201.33},
		{Line: "3-1", Direction: "255.0000", Distance: 180.02},
	}
	start := traverse.Point{Name: "1", Easting: 1000, Northing: 2000}

	raw, err := traverse.Compute(start, legs, traverse.WithMethod(traverse.MethodNone))
	require.NoError(t, err)
	adj, err := traverse.Compute(start, legs)
	require.NoError(t, err)

	assert.Greater(t, raw.Misclosure.Linear, 0.0)
	assert.InDelta(t, raw.Misclosure.Linear, adj.Misclosure.Linear, tol, "misclosure is reported before adjustment")
	assert.InDelta(t, start.Easting, adj.Points[3].Easting, 1e-9)
	assert.InDelta(t, start.Northing, adj.Points[3].Northing, 1e-9)
	assert.NotEqual(t, start.Easting, raw.Points[3].Easting)
}

func TestCompute_IncludedAngles(t *testing.T) {
	legs := []traverse.Leg{
		{Line: "A-B", Direction: "90.0000", Distance: 50},
		{Line: "B-C", Direction: "90.0000", Distance: 50},
		{Line: "C-D", Direction: "90.0000", Distance: 50},
		{Line: "D-A", Direction: "90.0020", Distance: 50},
	}
	res, err := traverse.Compute(traverse.Point{Name: "A"}, legs,
		traverse.WithIncludedAngles(90, traverse.Interior, true))
	require.NoError(t, err)
	require.NotNil(t, res.Angular)
	assert.InDelta(t, 20, angle.Seconds(res.Angular.Misclosure), 1e-6)
	assert.InDelta(t, 0, res.Points[4].Easting, 1e-6)
	assert.InDelta(t, 0, res.Points[4].Northing, 1e-6)
}

func TestCompute_Errors(t *testing.T) {
	_, err := traverse.Compute(traverse.Point{}, nil)
	require.ErrorIs(t, err, traverse.ErrShape)

	_, err = traverse.Compute(traverse.Point{}, []traverse.Leg{{Direction: "bad", Distance: 1}})
	require.ErrorIs(t, err, angle.ErrFormat)

	_, err = traverse.Compute(traverse.Point{}, []traverse.Leg{{Direction: "0", Distance: -1}})
	require.ErrorIs(t, err, traverse.ErrInvalidReading)

	_, err = traverse.Compute(traverse.Point{}, []traverse.Leg{{Direction: "0", Distance: 1}},
		traverse.WithMethod(traverse.Method(9)))
	require.ErrorIs(t, err, traverse.ErrOptionViolation)

	_, err = traverse.Compute(traverse.Point{}, []traverse.Leg{{Direction: "0", Distance: 1}},
		traverse.WithIncludedAngles(0, traverse.AngleKind(7), true))
	require.ErrorIs(t, err, traverse.ErrOptionViolation)
}
