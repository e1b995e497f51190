package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/traverse"
	"github.com/katalvlaran/surveyor/triangulation"
)

// Point is a named grid position.
type Point struct {
	Name     string  `json:"name" yaml:"name"`
	Easting  float64 `json:"easting" yaml:"easting"`
	Northing float64 `json:"northing" yaml:"northing"`
	Fixed    bool    `json:"fixed,omitempty" yaml:"fixed,omitempty"`
}

// Table is one block of a report. CSV output writes Header and Rows only;
// PDF output also prints Title and Notes above the grid.
type Table struct {
	Title  string
	Notes  []string
	Header []string
	Rows   [][]string
}

// coord formats v with four decimals; round-off below the last digit
// prints as zero rather than "-0.0000".
func coord(v float64) string {
	if math.Abs(v) < 5e-5 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func seconds(deg float64) string {
	return strconv.FormatFloat(angle.Seconds(deg), 'f', 1, 64) + `"`
}

// PointsTable lists stations with their coordinates.
func PointsTable(pts []Point) Table {
	rows := make([][]string, len(pts))
	for i, p := range pts {
		rows[i] = []string{p.Name, coord(p.Easting), coord(p.Northing), strconv.FormatBool(p.Fixed)}
	}
	return Table{Title: "Stations", Header: []string{"name", "easting", "northing", "fixed"}, Rows: rows}
}

// TraverseTable lists the start point and every reduced, corrected leg.
func TraverseTable(res *traverse.Result) Table {
	t := Table{
		Title: "Traverse",
		Header: []string{
			"line", "azimuth", "distance", "latitude", "departure",
			"corr_lat", "corr_dep", "adj_latitude", "adj_departure",
			"point", "easting", "northing",
		},
		Rows: make([][]string, 0, len(res.Lines)+1),
	}
	m := res.Misclosure
	ratio := m.PrecisionRatio()
	if m.Linear == 0 {
		ratio = "closed exactly"
	}
	t.Notes = append(t.Notes, fmt.Sprintf("Linear misclosure %s m over %s m, precision %s (%s)",
		coord(m.Linear), coord(m.Perimeter), ratio, res.Method))
	if a := res.Angular; a != nil {
		t.Notes = append(t.Notes, fmt.Sprintf("Angular misclosure %s, correction %s per angle",
			seconds(a.Misclosure), seconds(a.Correction)))
	}

	if len(res.Points) > 0 {
		p := res.Points[0]
		t.Rows = append(t.Rows, []string{"", "", "", "", "", "", "", "", "", p.Name, coord(p.Easting), coord(p.Northing)})
	}
	adj := res.Adjustment
	for i, line := range res.Lines {
		p := res.Points[i+1]
		t.Rows = append(t.Rows, []string{
			line,
			angle.Encode(res.Azimuths[i]),
			coord(res.Distances[i]),
			coord(res.Latitudes[i]),
			coord(res.Departures[i]),
			coord(adj.LatCorrections[i]),
			coord(adj.DepCorrections[i]),
			coord(adj.Latitudes[i]),
			coord(adj.Departures[i]),
			p.Name,
			coord(p.Easting),
			coord(p.Northing),
		})
	}
	return t
}

// ResidualsTable pairs residuals with the observations they belong to.
// Angular residuals are in arcseconds.
func ResidualsTable(obs []network.Observation, res []network.Residual) (Table, error) {
	rows := make([][]string, 0, len(res))
	for _, r := range res {
		if r.Index < 0 || r.Index >= len(obs) {
			return Table{}, fmt.Errorf("report: residual refers to observation %d of %d", r.Index, len(obs))
		}
		o := obs[r.Index]
		observed, v := coord(r.Observed), coord(r.Value)
		if o.Kind.Angular() {
			observed = angle.Encode(r.Observed)
			v = strconv.FormatFloat(angle.Seconds(r.Value), 'f', 2, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Index), o.String(), observed, v,
			strconv.FormatFloat(r.Standardized, 'f', 2, 64),
		})
	}
	return Table{
		Title:  "Residuals",
		Header: []string{"index", "observation", "observed", "residual", "standardized"},
		Rows:   rows,
	}, nil
}

// AdjustmentNotes summarizes a least-squares run in one line each.
func AdjustmentNotes(res *network.Result) []string {
	notes := []string{
		fmt.Sprintf("Iterations %d, converged %t", res.Iterations, res.Converged),
		fmt.Sprintf("Variance factor %.4f with %d degrees of freedom", res.VarianceFactor, res.DegreesOfFreedom),
	}
	for _, p := range res.Precision {
		notes = append(notes, fmt.Sprintf("%s: sE %s m, sN %s m", p.Name, coord(p.SigmaE), coord(p.SigmaN)))
	}
	return notes
}

// LevelBookTable lists a reduced level book; the notes carry the
// arithmetic check.
func LevelBookTable(run *leveling.Run) Table {
	opt := func(v *float64) string {
		if v == nil {
			return ""
		}
		return coord(*v)
	}
	rows := make([][]string, len(run.Rows))
	for i, r := range run.Rows {
		rows[i] = []string{r.Station, opt(r.Backsight), opt(r.Intermediate), opt(r.Foresight), coord(r.HI), coord(r.Elevation)}
	}
	return Table{
		Title: "Level book",
		Notes: []string{fmt.Sprintf("Sum BS %s, sum FS %s, check %s, arithmetic error %s",
			coord(run.SumBS), coord(run.SumFS), coord(run.Check), coord(run.ArithmeticError()))},
		Header: []string{"station", "bs", "is", "fs", "hi", "elevation"},
		Rows:   rows,
	}
}

// TrigTable lists reduced trigonometric leveling targets.
func TrigTable(res []leveling.TrigResult) Table {
	rows := make([][]string, len(res))
	for i, r := range res {
		rows[i] = []string{
			r.Target, coord(r.HorizontalDistance), angle.Encode(r.Zenith), coord(r.TargetHeight),
			coord(r.Vertical), coord(r.Correction), coord(r.Elevation),
		}
	}
	return Table{
		Title:  "Trigonometric leveling",
		Header: []string{"target", "hd", "zenith", "th", "vertical", "correction", "elevation"},
		Rows:   rows,
	}
}

// ChainTable lists the triangles of a chain with their closures and
// corrected angles.
func ChainTable(c *triangulation.Chain) Table {
	rows := make([][]string, len(c.Reports))
	for i, r := range c.Reports {
		rows[i] = []string{
			r.Triangle, strconv.FormatFloat(r.MisclosureSeconds, 'f', 1, 64) + `"`,
			r.AdjustedDMS[0], r.AdjustedDMS[1], r.AdjustedDMS[2],
			coord(r.Base), coord(r.Side13), coord(r.Side23),
		}
	}
	return Table{
		Title:  "Triangles",
		Header: []string{"triangle", "misclosure", "a1", "a2", "a3", "base", "side13", "side23"},
		Rows:   rows,
	}
}

// ClosureTable lists the figure closures of a braced quadrilateral.
func ClosureTable(an triangulation.QuadAnalysis) Table {
	figures := append([]triangulation.Closure{an.Total}, an.Triangles[:]...)
	rows := make([][]string, len(figures))
	for i, c := range figures {
		rows[i] = []string{c.Figure, angle.Encode(c.Sum), angle.Encode(c.Target), strconv.FormatFloat(c.MisclosureS, 'f', 1, 64) + `"`}
	}
	return Table{
		Title:  "Figure closures",
		Header: []string{"figure", "sum", "target", "misclosure"},
		Rows:   rows,
	}
}
