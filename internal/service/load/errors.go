package load

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLoadID         = errors.New("invalid load id")
	ErrInvalidRate           = errors.New("invalid rate")
	ErrInvalidStatus         = errors.New("invalid load status")
	ErrStatusNotUpdatable    = errors.New("status is changed via the dispatch workflow")

	ErrLoadNotFound = errors.New("load not found")
)
