package report_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/geo"
	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/report"
	"github.com/katalvlaran/surveyor/traverse"
)

func TestWritePoints(t *testing.T) {
	var buf bytes.Buffer
	err := report.WritePoints(&buf, []report.Point{
		{Name: "CP1", Easting: 5000, Northing: 8000, Fixed: true},
		{Name: "P", Easting: 5070.71068, Northing: -0.00001},
	})
	require.NoError(t, err)
	assert.Equal(t, "name,easting,northing,fixed\n"+
		"CP1,5000.0000,8000.0000,true\n"+
		"P,5070.7107,0.0000,false\n", buf.String())
}

func TestWriteTraverse(t *testing.T) {
	legs := []traverse.Leg{
		{Line: "A-B", Direction: "0", Distance: 100},
		{Line: "B-C", Direction: "90", Distance: 100},
		{Line: "C-D", Direction: "180", Distance: 100},
		{Line: "D-A", Direction: "270", Distance: 100},
	}
	res, err := traverse.Compute(traverse.Point{Name: "A", Easting: 1000, Northing: 2000}, legs,
		traverse.WithAngleFormat(angle.FormatDecimal))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTraverse(&buf, res))
	want := strings.Join([]string{
		"line,azimuth,distance,latitude,departure,corr_lat,corr_dep,adj_latitude,adj_departure,point,easting,northing",
		",,,,,,,,,A,1000.0000,2000.0000",
		"A-B,00.0000,100.0000,100.0000,0.0000,0.0000,0.0000,100.0000,0.0000,B,1000.0000,2100.0000",
		"B-C,90.0000,100.0000,0.0000,100.0000,0.0000,0.0000,0.0000,100.0000,C,1100.0000,2100.0000",
		"C-D,180.0000,100.0000,-100.0000,0.0000,0.0000,0.0000,-100.0000,0.0000,D,1100.0000,2000.0000",
		"D-A,270.0000,100.0000,0.0000,-100.0000,0.0000,0.0000,0.0000,-100.0000,A,1000.0000,2000.0000",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteResiduals(t *testing.T) {
	obs := []network.Observation{
		network.Distance("A", "B", 100, 0.005),
		network.Angle("A", "B", "C", 90, 2.0/3600),
	}
	res := []network.Residual{
		{Index: 0, Kind: network.KindDistance, Observed: 100, Value: 0.0021, Standardized: 0.42},
		{Index: 1, Kind: network.KindAngle, Observed: 90, Value: -1.5 / 3600, Standardized: -0.75},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteResiduals(&buf, obs, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0,distance A→B,100.0000,0.0021,0.42", lines[1])
	assert.Equal(t, "1,angle A@B→C,90.0000,-1.50,-0.75", lines[2])

	err := report.WriteResiduals(&buf, obs, []network.Residual{{Index: 5}})
	require.Error(t, err)
}

func TestWriteLevelBook(t *testing.T) {
	s := leveling.Sight
	run, err := leveling.Differential(100, []leveling.Reading{
		{Station: "BM1", Backsight: s(1.5)},
		{Station: "BM2", Foresight: s(0.5)},
	})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteLevelBook(&buf, run))
	assert.Equal(t, "station,bs,is,fs,hi,elevation\n"+
		"BM1,1.5000,,,101.5000,100.0000\n"+
		"BM2,,,0.5000,101.5000,101.0000\n", buf.String())
}

func TestWriteTrig(t *testing.T) {
	res, err := leveling.Trig(50, 1.5, []leveling.TrigObservation{{Target: "T", HorizontalDistance: 1000, Zenith: 90, TargetHeight: 1.5}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteTrig(&buf, res))
	assert.Equal(t, "target,hd,zenith,th,vertical,correction,elevation\n"+
		"T,1000.0000,90.0000,1.5000,0.0000,0.0675,50.0675\n", buf.String())
}

func TestWriteKML(t *testing.T) {
	u := geo.UTM{Zone: 31, North: true}
	pts := []report.Point{
		{Name: "A", Easting: 500000, Northing: 1000},
		{Name: "B", Easting: 500100, Northing: 1000},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteKML(&buf, pts, u, report.WithDocumentName("job"), report.WithPath(true)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 3, strings.Count(out, "<Placemark>"))
	assert.Contains(t, out, "<name>job</name>")
	assert.Contains(t, out, "<name>A</name>")
	assert.Contains(t, out, "<name>job path</name>")
	assert.Contains(t, out, "<LineString>")

	lon, lat, err := u.ToGeographic(500000, 1000)
	require.NoError(t, err)
	assert.Contains(t, out, strconv.FormatFloat(lon, 'f', -1, 64)+","+strconv.FormatFloat(lat, 'f', -1, 64))
}

func TestWriteKML_Errors(t *testing.T) {
	u := geo.UTM{Zone: 31, North: true}
	var buf bytes.Buffer
	require.ErrorIs(t, report.WriteKML(&buf, nil, u), report.ErrNoPoints)

	err := report.WriteKML(&buf, []report.Point{{Name: "X", Easting: 1, Northing: 1}}, u)
	require.ErrorIs(t, err, geo.ErrOutOfRange)
	assert.Contains(t, err.Error(), "point X")
}

func TestWritePDF(t *testing.T) {
	run, err := leveling.Differential(100, []leveling.Reading{
		{Station: "BM1", Backsight: leveling.Sight(1.5)},
		{Station: "TP1", Foresight: leveling.Sight(1.0)},
	})
	require.NoError(t, err)

	wide := report.Table{Title: "Wide", Header: make([]string, 12)}
	for _, tables := range [][]report.Table{
		{report.LevelBookTable(run)},
		{report.PointsTable([]report.Point{{Name: "CP1", Easting: 5000, Northing: 8000, Fixed: true}}), wide},
	} {
		var buf bytes.Buffer
		require.NoError(t, report.WritePDF(&buf, "Field report", tables...))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	}

	require.ErrorIs(t, report.WritePDF(&bytes.Buffer{}, "empty"), report.ErrNoTables)
}

func TestLevelBookTable_Notes(t *testing.T) {
	run, err := leveling.Differential(100, []leveling.Reading{
		{Station: "BM1", Backsight: leveling.Sight(1.5)},
		{Station: "TP1", Foresight: leveling.Sight(1.0)},
	})
	require.NoError(t, err)

	tb := report.LevelBookTable(run)
	require.Len(t, tb.Notes, 1)
	assert.Equal(t, "Sum BS 1.5000, sum FS 1.0000, check 100.5000, arithmetic error 0.0000", tb.Notes[0])
	assert.Len(t, tb.Rows, 2)
}

func TestResidualsTable_IndexOutOfRange(t *testing.T) {
	_, err := report.ResidualsTable(nil, []network.Residual{{Index: 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "observation 2 of 0")

	require.Error(t, report.WriteResiduals(&bytes.Buffer{}, nil, []network.Residual{{Index: -1}}))
}
