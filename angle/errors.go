package angle

import "errors"

var (
	// ErrFormat indicates that a packed DD.MMSS string is not numeric or
	// carries minutes/seconds outside [0,60).
	ErrFormat = errors.New("angle: malformed DD.MMSS value")
)
