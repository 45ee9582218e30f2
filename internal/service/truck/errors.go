package truck

import "errors"

var (
	ErrMissingUnitNumber = errors.New("unit number is required")
	ErrInvalidTruckID    = errors.New("invalid truck id")
	ErrInvalidStatus     = errors.New("invalid truck status")

	ErrTruckNotFound = errors.New("truck not found")
	ErrConflict      = errors.New("truck already exists")
)
