package synergy

import "errors"

// Sentinel kinds for synergy errors.
var (
	// ErrUnknownPlayer means the strength mapping is missing a player
	// who appears in the recorded game history. The caller must supply
	// a strength for every such player.
	ErrUnknownPlayer = errors.New("no strength recorded for player")
)
