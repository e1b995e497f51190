package network

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/matrix"
)

// Adjust runs Iterate until the largest correction is below the tolerance
// or the iteration cap is reached.
//
// Behavior highlights:
//   - The caller's stations are copied, never modified.
//   - All stations fixed: the input is returned after zero iterations.
//   - Singular normal matrix: a Result holding the unadjusted stations is
//     returned together with ErrSingularMatrix; the error names the free
//     stations with no observation path to a fixed station.
//   - After the loop, residuals, the variance factor σ0² = vᵀPv/(n−u) and
//     per-station standard deviations from σ0²·N⁻¹ are evaluated at the
//     final coordinates.
//
// Errors:
//   - ErrOptionViolation, ErrInvalidStation, ErrDuplicateStation,
//     ErrNoFixedStation, ErrInvalidObservation, ErrSingularMatrix.
func Adjust(stations []Station, obs []Observation, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for i, ob := range obs {
		if err := ob.Validate(); err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
	}
	initial, err := NewState(stations)
	if err != nil {
		return nil, err
	}

	res := &Result{Stations: initial.Stations(), VarianceFactor: 1}
	if _, unknowns := initial.Unknowns(); unknowns == 0 {
		res.Converged = true
		return res, nil
	}

	s := initial
	var (
		next State
		step Step
	)
	for iter := 1; iter <= o.MaxIterations; iter++ {
		next, step, err = Iterate(s, obs)
		if err != nil {
			res.Skipped = step.Skipped
			if errors.Is(err, ErrSingularMatrix) {
				if loose := Unconnected(stations, obs); len(loose) > 0 {
					err = fmt.Errorf("%w (not tied to a fixed station: %s)", err, strings.Join(loose, ", "))
				}
			}
			return res, err
		}
		o.OnIteration(iter, step)
		s = next
		res.Iterations = iter
		res.Corrections = step.Corrections
		res.Skipped = step.Skipped
		if step.MaxCorrection < o.Tolerance {
			res.Converged = true
			break
		}
	}

	res.Stations = s.Stations()
	if err = s.statistics(obs, res); err != nil {
		return res, err
	}

	return res, nil
}

// statistics fills residuals, the variance factor and station precision
// from a fresh linearization at the adjusted coordinates.
func (s State) statistics(obs []Observation, res *Result) error {
	cols, unknowns := s.Unknowns()
	sys, _, err := s.assemble(obs, cols, unknowns)
	if err != nil {
		return err
	}

	var vtpv float64
	res.Residuals = make([]Residual, len(sys.rows))
	for i, r := range sys.rows {
		ob := obs[r.obs]
		// Residual v = computed − observed = −l.
		v := -r.misc
		vtpv += r.weight * v * v
		unit := v
		if ob.Kind.Angular() {
			unit = angle.Degrees(v)
		}
		res.Residuals[i] = Residual{
			Index:        r.obs,
			Kind:         ob.Kind,
			Observed:     ob.Value,
			Adjusted:     ob.Value + unit,
			Value:        unit,
			Standardized: unit / ob.StdDev,
		}
	}

	res.DegreesOfFreedom = len(sys.rows) - unknowns
	if res.DegreesOfFreedom > 0 {
		res.VarianceFactor = vtpv / float64(res.DegreesOfFreedom)
	}

	qxx, err := matrix.Inverse(sys.n)
	if err != nil {
		// A consistent network may be rank deficient when every
		// misclosure is zero; its precision is undefined.
		return nil
	}
	for i, c := range cols {
		if c < 0 {
			continue
		}
		qe, _ := qxx.At(c, c)
		qn, _ := qxx.At(c+1, c+1)
		res.Precision = append(res.Precision, StationPrecision{
			Name:   s.stations[i].Name,
			SigmaE: math.Sqrt(math.Max(0, res.VarianceFactor*qe)),
			SigmaN: math.Sqrt(math.Max(0, res.VarianceFactor*qn)),
		})
	}

	return nil
}
