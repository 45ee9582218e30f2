package loadevent

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined load status")
	ErrLoadNotFound    = errors.New("load not found")
)
