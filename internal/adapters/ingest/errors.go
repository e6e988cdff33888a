package ingest

import "errors"

// Sentinel error kinds for ingestion failures. These allow errors.Is/As
// from callers.
var (
	ErrMissingColumn = errors.New("required column missing from header")
	ErrMissingField  = errors.New("required field empty")
	ErrBadDate       = errors.New("unparseable match date")
	ErrBadGameID     = errors.New("unparseable game id")
	ErrTiedScore     = errors.New("tied score rejected")
	ErrSamePlayer    = errors.New("same player listed twice on one side")
)
