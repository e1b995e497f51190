package network

import "fmt"

const (
	// DefaultMaxIterations caps the Gauss-Newton passes of Adjust.
	DefaultMaxIterations = 5

	// DefaultTolerance is the convergence threshold on max|x|, in meters.
	DefaultTolerance = 0.001
)

// Option configures Adjust via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Adjust is invoked.
type Option func(*Options)

// Options holds the parameters of an adjustment run.
type Options struct {
	// MaxIterations is the maximum number of passes (> 0).
	MaxIterations int
	// Tolerance stops the loop once every correction is below it (> 0).
	Tolerance float64
	// OnIteration is called after every successful pass.
	OnIteration func(iter int, step Step)

	err error
}

// DefaultOptions returns five passes, a 1 mm tolerance and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		OnIteration:   func(int, Step) {},
	}
}

// WithMaxIterations sets the pass cap.
//
//	n > 0: cap at n passes
//	n ≤ 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the convergence threshold; it must be positive.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// WithOnIteration registers a callback run after every pass.
func WithOnIteration(fn func(iter int, step Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
