package job

import (
	"fmt"
	"io"

	"github.com/katalvlaran/surveyor/geo"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/report"
)

// WriteCSV writes the outcome's main table: the reduced traverse, the
// trigonometric targets, the level book, or the adjusted points.
func (o *Outcome) WriteCSV(w io.Writer) error {
	switch {
	case o.Traverse != nil:
		return report.WriteTraverse(w, o.Traverse)
	case o.Trig != nil:
		return report.WriteTrig(w, o.Trig)
	case o.Leveling != nil:
		return report.WriteLevelBook(w, o.Leveling)
	}
	return report.WritePoints(w, o.Points)
}

// adjustment returns the least-squares result behind the outcome, if any.
func (o *Outcome) adjustment() *network.Result {
	switch {
	case o.Network != nil:
		return o.Network
	case o.Quadrilateral != nil:
		return o.Quadrilateral.Adjusted
	}
	return nil
}

// WriteResiduals writes the residual table of a network or quadrilateral
// adjustment.
func (o *Outcome) WriteResiduals(w io.Writer) error {
	res := o.adjustment()
	if res == nil {
		return fmt.Errorf("%w: %s", ErrNoResiduals, o.Kind)
	}
	return report.WriteResiduals(w, o.Observations, res.Residuals)
}

// WriteKML writes the outcome's points as KML. epsg names the UTM zone of
// the grid coordinates; 0 falls back to the job's epsg field.
func (o *Outcome) WriteKML(w io.Writer, epsg int) error {
	if epsg == 0 {
		epsg = o.EPSG
	}
	u, err := geo.ParseEPSG(epsg)
	if err != nil {
		return fmt.Errorf("job: kml: %w", err)
	}
	name := o.Name
	if name == "" {
		name = string(o.Kind)
	}
	return report.WriteKML(w, o.Points, u,
		report.WithDocumentName(name),
		report.WithPath(o.Kind == KindTraverse),
	)
}

// WritePDF writes a field report of the outcome: the kind's own tables
// followed by the points, and the residuals when there was an adjustment.
func (o *Outcome) WritePDF(w io.Writer) error {
	var tables []report.Table
	switch {
	case o.Traverse != nil:
		tables = append(tables, report.TraverseTable(o.Traverse))
	case o.Chain != nil:
		tables = append(tables, report.ChainTable(o.Chain))
	case o.Quadrilateral != nil:
		tables = append(tables, report.ClosureTable(o.Quadrilateral.Analysis))
	case o.Trig != nil:
		tables = append(tables, report.TrigTable(o.Trig))
	case o.Leveling != nil:
		book := report.LevelBookTable(o.Leveling)
		if o.Misclosure != nil {
			book.Notes = append(book.Notes, fmt.Sprintf("Misclosure on closing benchmark %.4f m", *o.Misclosure))
		}
		tables = append(tables, book)
	}
	if len(o.Points) > 0 {
		tables = append(tables, report.PointsTable(o.Points))
	}
	if res := o.adjustment(); res != nil {
		rt, err := report.ResidualsTable(o.Observations, res.Residuals)
		if err != nil {
			return err
		}
		rt.Notes = report.AdjustmentNotes(res)
		tables = append(tables, rt)
	}

	title := o.Name
	if title == "" {
		title = string(o.Kind)
	}
	if err := report.WritePDF(w, title, tables...); err != nil {
		return fmt.Errorf("job: pdf: %w", err)
	}
	return nil
}
