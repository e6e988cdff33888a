package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNilConfig = errors.New("nil config")
)
