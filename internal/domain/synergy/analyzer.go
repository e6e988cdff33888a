// Package synergy measures how much a doubles partnership over- or
// under-performs what its players' individual skills predict.
package synergy

import (
	"fmt"
	"math"
	"sort"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/skill"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/types"
)

// Scale constants for the logistic expectation model.
const (
	logisticBase    = 10.0
	logisticDivisor = 10.0
	scoreScale      = 100.0

	defaultMinGames = 2
)

// outcome is one recorded game from a partnership's perspective.
type outcome struct {
	won       bool
	scoreDiff int // signed, positive when the partnership won the points battle
	opponents model.PairKey
}

// record accumulates a single partnership's history. Appended to during
// ingestion of games, read only afterwards.
type record struct {
	wins     int
	losses   int
	outcomes []outcome
	teamName string
}

// Analyzer folds games into per-partnership records and scores them
// against a strength mapping. Fresh instance per run.
type Analyzer struct {
	partnerships map[model.PairKey]*record
	minGames     int
}

// New creates an Analyzer, adjusted by options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		partnerships: make(map[model.PairKey]*record),
		minGames:     defaultMinGames,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Observe records one game for both partnerships involved. Forfeited
// games are ignored. Order of observation does not matter; the fold is
// commutative.
func (a *Analyzer) Observe(g model.Game) {
	if g.Forfeited() {
		return
	}

	winner, loser := g.Winner(), g.Loser()
	margin := g.Margin()
	a.track(winner, loser, true, margin)
	a.track(loser, winner, false, -margin)
}

func (a *Analyzer) track(side, opposing model.Side, won bool, scoreDiff int) {
	key := model.NewPairKey(side.Player1, side.Player2)
	rec, ok := a.partnerships[key]
	if !ok {
		rec = &record{teamName: side.TeamName}
		a.partnerships[key] = rec
	}
	rec.outcomes = append(rec.outcomes, outcome{
		won:       won,
		scoreDiff: scoreDiff,
		opponents: model.NewPairKey(opposing.Player1, opposing.Player2),
	})
	if won {
		rec.wins++
	} else {
		rec.losses++
	}
}

// Score ranks every partnership with at least the minimum number of
// joint games. For each of a partnership's games the expected win
// probability is a logistic function of summed pair strengths; the
// synergy score is the average (actual - expected) scaled by 100.
// Every player appearing in the history must be present in strengths;
// a missing player is a precondition violation, not a skippable game.
func (a *Analyzer) Score(strengths skill.Strengths) ([]types.SynergyRow, error) {
	rows := make([]types.SynergyRow, 0, len(a.partnerships))

	for key, rec := range a.partnerships {
		if len(rec.outcomes) < a.minGames {
			continue
		}

		teamStrength, err := pairStrength(strengths, key)
		if err != nil {
			return nil, err
		}

		var perfSum float64
		var diffSum int
		for _, o := range rec.outcomes {
			oppStrength, err := pairStrength(strengths, o.opponents)
			if err != nil {
				return nil, err
			}
			expected := 1 / (1 + math.Pow(logisticBase, (oppStrength-teamStrength)/logisticDivisor))
			actual := 0.0
			if o.won {
				actual = 1.0
			}
			perfSum += actual - expected
			diffSum += o.scoreDiff
		}

		games := len(rec.outcomes)
		rows = append(rows, types.SynergyRow{
			Partnership:        key.String(),
			Player1:            key.First,
			Player2:            key.Second,
			Team:               rec.teamName,
			SynergyScore:       perfSum / float64(games) * scoreScale,
			WinRate:            float64(rec.wins) / float64(rec.wins+rec.losses),
			Games:              games,
			AvgScoreDiff:       float64(diffSum) / float64(games),
			IndividualStrength: teamStrength,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SynergyScore != rows[j].SynergyScore {
			return rows[i].SynergyScore > rows[j].SynergyScore
		}
		return rows[i].Partnership < rows[j].Partnership
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}

// Partnerships returns the number of tracked partnerships, including
// those below the minimum game count.
func (a *Analyzer) Partnerships() int {
	return len(a.partnerships)
}

func pairStrength(strengths skill.Strengths, pair model.PairKey) (float64, error) {
	a, ok := strengths.Lookup(pair.First)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, pair.First)
	}
	b, ok := strengths.Lookup(pair.Second)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, pair.Second)
	}
	return a + b, nil
}
