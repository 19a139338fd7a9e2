package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRange indicates a date range whose start is after its end.
	ErrInvalidRange = errors.New("invalid date range")
)
