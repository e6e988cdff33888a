package rating

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrBadPolicyKey = errors.New("invalid policy table key")
	ErrTiedScore    = errors.New("tied score has no winner")
)
