package services

import "errors"

// Sentinel errors handlers map onto HTTP status codes. Services wrap
// them with detail via fmt.Errorf("%w: ...", ...).
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrDuplicate  = errors.New("duplicate")
)
