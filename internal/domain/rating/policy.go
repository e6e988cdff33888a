// Package rating implements the contextual rating engine: a
// deterministic, explainable per-game update rule over a player
// rating map.
package rating

import (
	"fmt"
	"strings"
)

// Outcome classifies the winning team relative to pre-game expectation.
type Outcome string

// Outcome values.
const (
	Tossup   Outcome = "tossup"
	Favored  Outcome = "favored"
	Underdog Outcome = "underdog"
)

// Level classifies how favored the stronger team was. LevelNone applies
// to tossups, which carry no favoredness.
type Level string

// Level values.
const (
	LevelNone   Level = ""
	LevelSlight Level = "slight"
	LevelHeavy  Level = "heavy"
)

// Margin classifies how lopsided the final score was.
type Margin string

// Margin values.
const (
	Narrow  Margin = "narrow"
	Solid   Margin = "solid"
	Blowout Margin = "blowout"
)

// PolicyKey indexes the multiplier table.
type PolicyKey struct {
	Outcome Outcome
	Level   Level
	Margin  Margin
}

// PolicyTable maps game contexts to rating-change multipliers, later
// scaled by the base delta.
type PolicyTable map[PolicyKey]float64

// DefaultPolicyTable returns the standard multiplier table: underdog
// upsets over heavy favorites earn the largest swings, favored-heavy
// wins the smallest, tossups a flat middle tier.
func DefaultPolicyTable() PolicyTable {
	return PolicyTable{
		{Underdog, LevelHeavy, Narrow}:  25,
		{Underdog, LevelHeavy, Solid}:   30,
		{Underdog, LevelHeavy, Blowout}: 35,

		{Underdog, LevelSlight, Narrow}:  18,
		{Underdog, LevelSlight, Solid}:   22,
		{Underdog, LevelSlight, Blowout}: 26,

		{Tossup, LevelNone, Narrow}:  12,
		{Tossup, LevelNone, Solid}:   15,
		{Tossup, LevelNone, Blowout}: 18,

		{Favored, LevelSlight, Narrow}:  8,
		{Favored, LevelSlight, Solid}:   10,
		{Favored, LevelSlight, Blowout}: 12,

		{Favored, LevelHeavy, Narrow}:  3,
		{Favored, LevelHeavy, Solid}:   5,
		{Favored, LevelHeavy, Blowout}: 7,
	}
}

// ParsePolicyKey parses a dashed config key like "underdog-heavy-narrow"
// or "tossup-narrow" into a PolicyKey. Tossup keys omit the level.
// Dashes rather than dots so keys survive the config layer's path
// flattening.
func ParsePolicyKey(s string) (PolicyKey, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "-")

	var k PolicyKey
	switch len(parts) {
	case 2:
		k = PolicyKey{Outcome: Outcome(parts[0]), Level: LevelNone, Margin: Margin(parts[1])}
	case 3:
		k = PolicyKey{Outcome: Outcome(parts[0]), Level: Level(parts[1]), Margin: Margin(parts[2])}
	default:
		return PolicyKey{}, fmt.Errorf("%w: %q", ErrBadPolicyKey, s)
	}

	switch k.Outcome {
	case Tossup:
		if k.Level != LevelNone {
			return PolicyKey{}, fmt.Errorf("%w: tossup key %q must not carry a level", ErrBadPolicyKey, s)
		}
	case Favored, Underdog:
		if k.Level != LevelSlight && k.Level != LevelHeavy {
			return PolicyKey{}, fmt.Errorf("%w: %q needs a slight or heavy level", ErrBadPolicyKey, s)
		}
	default:
		return PolicyKey{}, fmt.Errorf("%w: unknown outcome in %q", ErrBadPolicyKey, s)
	}

	switch k.Margin {
	case Narrow, Solid, Blowout:
	default:
		return PolicyKey{}, fmt.Errorf("%w: unknown margin in %q", ErrBadPolicyKey, s)
	}

	return k, nil
}

// ParsePolicyTable converts a flat config map (dashed keys) into a
// PolicyTable.
func ParsePolicyTable(raw map[string]float64) (PolicyTable, error) {
	table := make(PolicyTable, len(raw))
	for key, mult := range raw {
		k, err := ParsePolicyKey(key)
		if err != nil {
			return nil, err
		}
		table[k] = mult
	}
	return table, nil
}

// classifyMargin buckets an absolute score difference.
func classifyMargin(margin, narrowMargin, blowoutMargin int) Margin {
	switch {
	case margin >= blowoutMargin:
		return Blowout
	case margin >= narrowMargin:
		return Solid
	default:
		return Narrow
	}
}
