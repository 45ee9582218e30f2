package dispatch

import "errors"

var (
	ErrInvalidLoadID   = errors.New("invalid load id")
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrInvalidStatus   = errors.New("invalid load status")

	ErrLoadNotFound   = errors.New("load not found")
	ErrDriverNotFound = errors.New("driver not found")
)
