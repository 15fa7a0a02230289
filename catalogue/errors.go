package catalogue

import "errors"

var (
	// ErrDuplicateStop is returned when a stop name is added twice
	ErrDuplicateStop = errors.New("duplicate stop")
	// ErrDuplicateBus is returned when a bus name is added twice
	ErrDuplicateBus = errors.New("duplicate bus")
	// ErrUnknownStop is returned when a stop name is not registered
	ErrUnknownStop = errors.New("unknown stop")
	// ErrFrozen is returned by Builder methods called after Build
	ErrFrozen = errors.New("catalogue already built")
)
