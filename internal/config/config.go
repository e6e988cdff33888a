// Package config defines analyzer configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Functions accept context.Context as the first parameter.
// - External errors are wrapped via this package's error helpers.
package config

import (
	"context"
	"fmt"
)

// Config contains the analyzer's tunables. Every rating-engine knob is
// configuration, not a constant: the engine's contract is the
// classification pipeline, not specific numbers.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseDelta scales all rating changes.
	BaseDelta float64 `koanf:"base_delta"`

	// WinningBonus is a flat extra gain per winner. Zero disables it.
	WinningBonus float64 `koanf:"winning_bonus"`

	// TossupThreshold and SlightThreshold are the favoredness cut
	// points on pre-game team rating difference.
	TossupThreshold float64 `koanf:"tossup_threshold"`
	SlightThreshold float64 `koanf:"slight_threshold"`

	// NarrowMargin and BlowoutMargin are the score-margin cut points.
	NarrowMargin  int `koanf:"narrow_margin"`
	BlowoutMargin int `koanf:"blowout_margin"`

	// InitialRating is assigned to a player on first appearance.
	InitialRating float64 `koanf:"initial_rating"`

	// MinGames is the minimum joint games before a partnership is
	// scored for synergy.
	MinGames int `koanf:"min_games"`

	// Multipliers overrides the rating policy table, keyed by dashed
	// context keys, e.g. "underdog-heavy-blowout": 35 or
	// "tossup-narrow": 12. Empty means the built-in table.
	Multipliers map[string]float64 `koanf:"multipliers"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		BaseDelta:       0.0035,
		WinningBonus:    0,
		TossupThreshold: 0.1,
		SlightThreshold: 0.2,
		NarrowMargin:    3,
		BlowoutMargin:   12,
		InitialRating:   3.5,
		MinGames:        2,
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.BaseDelta <= 0 {
		return fmt.Errorf("%w: base_delta must be positive", ErrInvalidConfig)
	}
	if c.WinningBonus < 0 {
		return fmt.Errorf("%w: winning_bonus must not be negative", ErrInvalidConfig)
	}
	if c.TossupThreshold <= 0 || c.SlightThreshold <= c.TossupThreshold {
		return fmt.Errorf("%w: need 0 < tossup_threshold < slight_threshold", ErrInvalidConfig)
	}
	if c.NarrowMargin <= 0 || c.BlowoutMargin <= c.NarrowMargin {
		return fmt.Errorf("%w: need 0 < narrow_margin < blowout_margin", ErrInvalidConfig)
	}
	if c.MinGames < 1 {
		return fmt.Errorf("%w: min_games must be at least 1", ErrInvalidConfig)
	}
	return nil
}
