package ingest

import "errors"

var (
	// ErrHeader is returned when the header row is missing or lacks a
	// required column.
	ErrHeader = errors.New("ingest: missing or incomplete header")

	// ErrRecord is returned when a cell cannot be parsed.
	ErrRecord = errors.New("ingest: invalid record")
)
