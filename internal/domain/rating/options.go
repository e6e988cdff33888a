package rating

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithBaseDelta scales every rating change.
func WithBaseDelta(d float64) Option {
	return func(e *Engine) {
		if d > 0 {
			e.baseDelta = d
		}
	}
}

// WithWinningBonus adds a flat bonus to each winner on top of the
// zero-sum swing. Zero disables it.
func WithWinningBonus(b float64) Option {
	return func(e *Engine) {
		if b >= 0 {
			e.winningBonus = b
		}
	}
}

// WithThresholds sets the favoredness cut points: rating differences
// below tossup are tossups, below slight are slight favorites, anything
// above is a heavy favorite.
func WithThresholds(tossup, slight float64) Option {
	return func(e *Engine) {
		if tossup > 0 && slight > tossup {
			e.tossupThreshold = tossup
			e.slightThreshold = slight
		}
	}
}

// WithMargins sets the score-margin cut points: margins at or above
// blowout are blowouts, at or above narrow are solid, the rest narrow.
func WithMargins(narrow, blowout int) Option {
	return func(e *Engine) {
		if narrow > 0 && blowout > narrow {
			e.narrowMargin = narrow
			e.blowoutMargin = blowout
		}
	}
}

// WithInitialRating sets the default rating inserted for a player on
// first appearance.
func WithInitialRating(r float64) Option {
	return func(e *Engine) {
		if r > 0 {
			e.initialRating = r
		}
	}
}

// WithPolicyTable replaces the multiplier table.
func WithPolicyTable(table PolicyTable) Option {
	return func(e *Engine) {
		if len(table) > 0 {
			e.policy = table
		}
	}
}
