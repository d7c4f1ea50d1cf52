package tour

import "errors"

var (
	// ErrEmptyMatrix indicates a build request over zero points.
	ErrEmptyMatrix = errors.New("tour: empty distance matrix")

	// ErrStartOutOfRange indicates a start id outside [0, n).
	ErrStartOutOfRange = errors.New("tour: start point out of range")
)
