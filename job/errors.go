package job

import "errors"

var (
	// ErrKind is returned for an unknown job kind.
	ErrKind = errors.New("job: unknown kind")

	// ErrSection is returned when the section for the job's kind is missing
	// or carries no data.
	ErrSection = errors.New("job: missing section")

	// ErrNoFiles is returned when a job decoded from a stream references a
	// CSV file.
	ErrNoFiles = errors.New("job: file references need a job loaded from disk")

	// ErrAngle is returned for an angle field that is not a scalar.
	ErrAngle = errors.New("job: invalid angle field")

	// ErrNoResiduals is returned when residuals are requested from a job
	// that does not run a least-squares adjustment.
	ErrNoResiduals = errors.New("job: outcome has no residuals")
)
