package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMissingName           = errors.New("driver name is required")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidStatus         = errors.New("invalid driver status")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("driver already exists")
)
