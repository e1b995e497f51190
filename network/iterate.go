package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/matrix"
)

// system is the assembled least-squares problem of one pass.
type system struct {
	a    *matrix.Dense
	w, l []float64
	rows []row
	n    *matrix.Dense // AᵀPA
	u    []float64     // AᵀPl
}

// assemble linearizes obs around s and forms the normal equations.
func (s State) assemble(obs []Observation, cols []int, unknowns int) (*system, []Skip, error) {
	rows, skipped, err := s.linearize(obs, cols)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, skipped, fmt.Errorf("%w: no usable observations", ErrSingularMatrix)
	}

	a, err := matrix.NewDense(len(rows), unknowns)
	if err != nil {
		return nil, skipped, err
	}
	sys := &system{
		a:    a,
		w:    make([]float64, len(rows)),
		l:    make([]float64, len(rows)),
		rows: rows,
	}
	for i, r := range rows {
		for k, c := range r.cols {
			if err = a.Add(i, c, r.vals[k]); err != nil {
				return nil, skipped, fmt.Errorf("observation %d: %w", r.obs, err)
			}
		}
		sys.w[i] = r.weight
		sys.l[i] = r.misc
	}
	if sys.n, sys.u, err = matrix.NormalEquations(a, sys.w, sys.l); err != nil {
		return nil, skipped, err
	}

	return sys, skipped, nil
}

// Iterate performs one Gauss-Newton pass over s and returns the corrected
// state. s itself is never modified.
//
// Implementation:
//   - Stage 1: Number the unknowns, two per free station in station order.
//   - Stage 2: Linearize every observation (see the package doc for the
//     partials); skip those naming unknown stations or zero-length lines.
//   - Stage 3: Form N = AᵀPA and U = AᵀPl. A zero U yields x = 0 without
//     factorizing N, provided no diagonal entry of N is zero (an unknown no
//     observation touches); otherwise x solves N·x = U by LU.
//   - Stage 4: Apply x to a clone of s.
//
// Errors:
//   - ErrInvalidObservation for malformed observations.
//   - ErrSingularMatrix (wrapping matrix.ErrSingular) when N cannot be
//     factorized or no observation is usable. The returned state is s.
func Iterate(s State, obs []Observation) (State, Step, error) {
	cols, unknowns := s.Unknowns()
	if unknowns == 0 {
		return s.Clone(), Step{}, nil
	}

	sys, skipped, err := s.assemble(obs, cols, unknowns)
	step := Step{Skipped: skipped}
	if err != nil {
		return s, step, err
	}
	step.Misclosures = sys.l
	step.Used = make([]int, len(sys.rows))
	for i, r := range sys.rows {
		step.Used[i] = r.obs
	}

	x := make([]float64, unknowns)
	if allZero(sys.u) {
		// x stays zero, but every unknown must carry at least one row.
		err = observed(sys.n)
	} else {
		x, err = matrix.Solve(sys.n, sys.u)
	}
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return s, step, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
		return s, step, err
	}
	step.Corrections = x
	for _, v := range x {
		step.MaxCorrection = math.Max(step.MaxCorrection, math.Abs(v))
	}

	next := s.Clone()
	for i, c := range cols {
		if c < 0 {
			continue
		}
		next.stations[i].Easting += x[c]
		next.stations[i].Northing += x[c+1]
	}

	return next, step, nil
}

// observed reports matrix.ErrSingular when an unknown has a zero diagonal
// entry in n.
func observed(n *matrix.Dense) error {
	for i, v := range n.Diag() {
		if v == 0 {
			return fmt.Errorf("unknown %d has no observation: %w", i, matrix.ErrSingular)
		}
	}
	return nil
}

func allZero(xs []float64) bool {
	for _, v := range xs {
		if v != 0 {
			return false
		}
	}
	return true
}
