// Package skill defines how player strength estimates flow between the
// rating engines and the synergy analyzer. The analyzer only ever sees
// a Strengths mapping, so any estimator that can produce one plugs in.
package skill

import (
	"context"
	"sort"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/types"
)

// Strengths maps a player to a scalar skill location value. Which
// engine produced the values does not matter downstream; only relative
// ordering semantics differ between sources.
type Strengths map[string]float64

// Lookup returns the player's strength and whether it is present.
func (s Strengths) Lookup(player string) (float64, bool) {
	v, ok := s[player]
	return v, ok
}

// Source supplies finalized per-player strengths after a processing
// pass.
type Source interface {
	Strengths() Strengths
}

// FromRatings adapts a plain rating map into a Strengths mapping.
func FromRatings(ratings map[string]float64) Strengths {
	s := make(Strengths, len(ratings))
	for player, r := range ratings {
		s[player] = r
	}
	return s
}

// Estimate is a probabilistic skill estimate: a location and an
// uncertainty.
type Estimate struct {
	Mu    float64
	Sigma float64
}

// Composition is one game expressed as winner and loser pairs, the
// shape a factor-graph estimator consumes.
type Composition struct {
	Winners [2]string
	Losers  [2]string
}

// Estimator is the external probabilistic skill engine. Given
// chronologically ordered compositions it returns, per player, a final
// (mu, sigma) after iterative convergence. This repository ships only
// the contract; implementations are collaborators.
type Estimator interface {
	Estimate(ctx context.Context, compositions []Composition) (map[string]Estimate, error)
}

// FromEstimates reduces probabilistic estimates to a Strengths mapping
// using mu as the location value.
func FromEstimates(estimates map[string]Estimate) Strengths {
	s := make(Strengths, len(estimates))
	for player, e := range estimates {
		s[player] = e.Mu
	}
	return s
}

// RankEstimates orders probabilistic estimates into table rows, mu
// descending with alphabetical tie-breaks. Team names come from the
// supplied first-seen attribution (may be nil).
func RankEstimates(estimates map[string]Estimate, teamOf map[string]string) []types.EstimateRow {
	rows := make([]types.EstimateRow, 0, len(estimates))
	for player, e := range estimates {
		rows = append(rows, types.EstimateRow{Player: player, Team: teamOf[player], Mu: e.Mu, Sigma: e.Sigma})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Mu != rows[j].Mu {
			return rows[i].Mu > rows[j].Mu
		}
		return rows[i].Player < rows[j].Player
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
