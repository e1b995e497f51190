package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/job"
	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/traverse"
	"github.com/katalvlaran/surveyor/triangulation"
)

// printSummary writes a human-readable report of out.
func printSummary(w io.Writer, out *job.Outcome) {
	title := string(out.Kind)
	if out.Name != "" {
		title += ": " + out.Name
	}
	fmt.Fprintln(w, title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	switch {
	case out.Traverse != nil:
		traverseSummary(tw, out.Traverse)
	case out.Chain != nil:
		chainSummary(tw, out.Chain)
	case out.Quadrilateral != nil:
		quadSummary(tw, out.Quadrilateral)
	case out.Network != nil:
		networkSummary(tw, out.Network)
	case out.Trig != nil:
		trigSummary(tw, out.Trig)
	case out.Leveling != nil:
		levelSummary(tw, out.Leveling, out.Misclosure)
	}
	tw.Flush()
}

func traverseSummary(w io.Writer, res *traverse.Result) {
	fmt.Fprintln(w, "line\tazimuth\tdistance\tpoint\teasting\tnorthing\t")
	start := res.Points[0]
	fmt.Fprintf(w, "\t\t\t%s\t%.4f\t%.4f\t\n", start.Name, start.Easting, start.Northing)
	for i, line := range res.Lines {
		p := res.Points[i+1]
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%s\t%.4f\t%.4f\t\n",
			line, angle.Encode(res.Azimuths[i]), res.Distances[i], p.Name, p.Easting, p.Northing)
	}
	m := res.Misclosure
	fmt.Fprintf(w, "misclosure\t%.4f\tprecision\t%s\t\t\t\n", m.Linear, m.PrecisionRatio())
	if a := res.Angular; a != nil {
		fmt.Fprintf(w, "angular\t%.1f\"\tper angle\t%.1f\"\t\t\t\n", angle.Seconds(a.Misclosure), angle.Seconds(a.Correction))
	}
}

func chainSummary(w io.Writer, c *triangulation.Chain) {
	fmt.Fprintln(w, "triangle\tmisclosure\tA1\tA2\tA3\t")
	for _, r := range c.Reports {
		fmt.Fprintf(w, "%s\t%.1f\"\t%s\t%s\t%s\t\n", r.Triangle, r.MisclosureSeconds,
			r.AdjustedDMS[0], r.AdjustedDMS[1], r.AdjustedDMS[2])
	}
	fmt.Fprintln(w, "\t\t\t\t\t")
	fmt.Fprintln(w, "station\teasting\tnorthing\t")
	for _, p := range c.Stations {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t\n", p.Name, p.Easting, p.Northing)
	}
}

func quadSummary(w io.Writer, q *triangulation.QuadResult) {
	fmt.Fprintln(w, "figure\tsum\tmisclosure\t")
	for _, c := range append([]triangulation.Closure{q.Analysis.Total}, q.Analysis.Triangles[:]...) {
		fmt.Fprintf(w, "%s\t%s\t%.1f\"\t\n", c.Figure, angle.Encode(c.Sum), c.MisclosureS)
	}
	fmt.Fprintln(w, "\t\t\t")
	if q.Adjusted != nil {
		networkSummary(w, q.Adjusted)
	}
}

func networkSummary(w io.Writer, res *network.Result) {
	fmt.Fprintf(w, "iterations\t%d\tconverged\t%t\t\n", res.Iterations, res.Converged)
	fmt.Fprintf(w, "σ0²\t%.4f\tdof\t%d\t\n", res.VarianceFactor, res.DegreesOfFreedom)
	sigma := make(map[string]network.StationPrecision, len(res.Precision))
	for _, p := range res.Precision {
		sigma[p.Name] = p
	}
	fmt.Fprintln(w, "station\teasting\tnorthing\tσE\tσN\t")
	for _, s := range res.Stations {
		se, sn := "fixed", "fixed"
		if p, ok := sigma[s.Name]; ok {
			se, sn = fmt.Sprintf("%.4f", p.SigmaE), fmt.Sprintf("%.4f", p.SigmaN)
		} else if !s.Fixed {
			se, sn = "-", "-"
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%s\t%s\t\n", s.Name, s.Easting, s.Northing, se, sn)
	}
}

func trigSummary(w io.Writer, res []leveling.TrigResult) {
	fmt.Fprintln(w, "target\thd\tzenith\tvertical\tc+r\televation\t")
	for _, r := range res {
		fmt.Fprintf(w, "%s\t%.3f\t%s\t%.3f\t%.4f\t%.3f\t\n",
			r.Target, r.HorizontalDistance, angle.Encode(r.Zenith), r.Vertical, r.Correction, r.Elevation)
	}
}

func sight(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.3f", *v)
}

func levelSummary(w io.Writer, run *leveling.Run, misclosure *float64) {
	fmt.Fprintln(w, "station\tBS\tIS\tFS\tHI\televation\t")
	for _, r := range run.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3f\t%.3f\t\n",
			r.Station, sight(r.Backsight), sight(r.Intermediate), sight(r.Foresight), r.HI, r.Elevation)
	}
	fmt.Fprintf(w, "Σ\t%.3f\t\t%.3f\t\t\t\n", run.SumBS, run.SumFS)
	fmt.Fprintf(w, "check\t%.3f\tarithmetic\t%.4f\t\t\t\n", run.Check, run.ArithmeticError())
	if misclosure != nil {
		fmt.Fprintf(w, "misclosure\t%.4f\t\t\t\t\t\n", *misclosure)
	}
}
