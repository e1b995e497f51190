package report

import "errors"

var (
	// ErrNoPoints is returned when a KML document would hold no placemark.
	ErrNoPoints = errors.New("report: no points to write")

	// ErrNoTables is returned when a PDF report would be empty.
	ErrNoTables = errors.New("report: no tables to write")
)
