package report

import (
	"encoding/csv"
	"io"

	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/traverse"
)

// writeTable writes the header and rows of t; title and notes are PDF only.
func writeTable(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WritePoints writes name, easting, northing and fixed columns.
func WritePoints(w io.Writer, pts []Point) error {
	return writeTable(w, PointsTable(pts))
}

// WriteTraverse writes one row for the start point followed by one row per
// leg with its reduction, correction and far-end coordinates.
func WriteTraverse(w io.Writer, res *traverse.Result) error {
	return writeTable(w, TraverseTable(res))
}

// WriteResiduals writes the residuals of a network adjustment next to the
// observations they belong to. Angular values are in arcseconds.
func WriteResiduals(w io.Writer, obs []network.Observation, res []network.Residual) error {
	t, err := ResidualsTable(obs, res)
	if err != nil {
		return err
	}
	return writeTable(w, t)
}

// WriteLevelBook writes a reduced level book.
func WriteLevelBook(w io.Writer, run *leveling.Run) error {
	return writeTable(w, LevelBookTable(run))
}

// WriteTrig writes reduced trigonometric leveling targets.
func WriteTrig(w io.Writer, res []leveling.TrigResult) error {
	return writeTable(w, TrigTable(res))
}
