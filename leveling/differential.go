package leveling

import (
	"fmt"
	"math"
)

// Sight returns a pointer to v, for filling Reading literals.
func Sight(v float64) *float64 { return &v }

// Reading is one row of a level book. Nil means the sight was not taken.
// A row with a backsight and a foresight is a change point: the foresight
// closes the current setup and the backsight opens the next.
type Reading struct {
	Station      string   `json:"station" yaml:"station"`
	Backsight    *float64 `json:"bs,omitempty" yaml:"bs,omitempty"`
	Intermediate *float64 `json:"is,omitempty" yaml:"is,omitempty"`
	Foresight    *float64 `json:"fs,omitempty" yaml:"fs,omitempty"`
}

// LevelRow is a reduced Reading. HI is the height of instrument of the
// setup the row was read from, or of the setup it opens on the first row.
type LevelRow struct {
	Reading
	HI        float64 `json:"hi"`
	Elevation float64 `json:"elevation"`
}

// Run is a reduced level book.
type Run struct {
	Rows  []LevelRow `json:"rows"`
	Start float64    `json:"start"`
	End   float64    `json:"end"`
	SumBS float64    `json:"sum_bs"`
	SumFS float64    `json:"sum_fs"`
	// Check is start + ΣBS − ΣFS; it equals End for a correctly reduced book.
	Check float64 `json:"check"`
}

// ArithmeticError returns Check − End.
func (r *Run) ArithmeticError() float64 { return r.Check - r.End }

// Misclosure returns End − known, the closing error against a benchmark of
// known elevation.
func (r *Run) Misclosure(known float64) float64 { return r.End - known }

// Differential reduces rows by the height-of-instrument method, starting
// from a benchmark of elevation start on the first row.
//
// Implementation:
//   - Stage 1: The first row must carry a backsight and no other sight;
//     HI = start + BS.
//   - Stage 2: Every later row takes its elevation from the current HI:
//     HI − FS when it carries a foresight, HI − IS otherwise. A backsight
//     on the same row opens a new setup at elevation + BS.
//   - Stage 3: The last row must close the run with a foresight and no
//     backsight. ΣBS, ΣFS and the arithmetic check are reported.
//
// Errors:
//   - ErrBooking for a book with fewer than two rows, a first row without
//     a backsight, a row with both IS and FS or with neither, or an open
//     last setup.
//   - ErrInvalidReading for a non-finite reading or start elevation.
func Differential(start float64, rows []Reading) (*Run, error) {
	if !finite(start) {
		return nil, fmt.Errorf("%w: start elevation %g", ErrInvalidReading, start)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need at least two rows, got %d", ErrBooking, len(rows))
	}
	for i, r := range rows {
		for _, v := range []*float64{r.Backsight, r.Intermediate, r.Foresight} {
			if v != nil && !finite(*v) {
				return nil, fmt.Errorf("row %d (%s): %w: %g", i, r.Station, ErrInvalidReading, *v)
			}
		}
	}

	first := rows[0]
	if first.Backsight == nil || first.Intermediate != nil || first.Foresight != nil {
		return nil, fmt.Errorf("row 0 (%s): %w: the first row carries only a backsight", first.Station, ErrBooking)
	}

	run := &Run{Start: start, Rows: make([]LevelRow, len(rows))}
	hi := start + *first.Backsight
	run.SumBS = *first.Backsight
	run.Rows[0] = LevelRow{Reading: first, HI: hi, Elevation: start}

	for i := 1; i < len(rows); i++ {
		r := rows[i]
		var elev float64
		switch {
		case r.Foresight != nil && r.Intermediate != nil:
			return nil, fmt.Errorf("row %d (%s): %w: both intermediate and foresight", i, r.Station, ErrBooking)
		case r.Foresight != nil:
			elev = hi - *r.Foresight
			run.SumFS += *r.Foresight
		case r.Intermediate != nil:
			elev = hi - *r.Intermediate
		default:
			return nil, fmt.Errorf("row %d (%s): %w: no foresight or intermediate sight", i, r.Station, ErrBooking)
		}
		if r.Backsight != nil && r.Foresight == nil {
			return nil, fmt.Errorf("row %d (%s): %w: backsight without foresight", i, r.Station, ErrBooking)
		}
		run.Rows[i] = LevelRow{Reading: r, HI: hi, Elevation: elev}
		if r.Backsight != nil {
			hi = elev + *r.Backsight
			run.SumBS += *r.Backsight
		}
	}

	last := rows[len(rows)-1]
	if last.Foresight == nil || last.Backsight != nil {
		return nil, fmt.Errorf("row %d (%s): %w: the run must close on a foresight", len(rows)-1, last.Station, ErrBooking)
	}

	run.End = run.Rows[len(rows)-1].Elevation
	run.Check = start + run.SumBS - run.SumFS

	return run, nil
}

// Closed reports whether the arithmetic check holds within tol meters.
func (r *Run) Closed(tol float64) bool { return math.Abs(r.ArithmeticError()) <= tol }
