package rating

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/types"
)

// Default engine configuration constants.
const (
	defaultBaseDelta       = 0.0035
	defaultWinningBonus    = 0.0
	defaultTossupThreshold = 0.1
	defaultSlightThreshold = 0.2
	defaultNarrowMargin    = 3
	defaultBlowoutMargin   = 12
	defaultInitialRating   = 3.5
	fallbackMultiplier     = 10
)

// Update describes how a single game changed the rating state. Returned
// so callers can log an explainable trail per game.
type Update struct {
	Outcome    Outcome
	Level      Level
	Margin     Margin
	RatingDiff float64
	Multiplier float64
	Delta      float64 // per-player swing, bonus excluded
	Winners    [2]string
	Losers     [2]string
	Skipped    bool // forfeit: no mutation happened
}

// Engine owns a player -> rating mapping and folds games over it. Each
// run constructs a fresh Engine; there is no shared state across runs
// and no concurrent access.
type Engine struct {
	ratings map[string]float64

	baseDelta       float64
	winningBonus    float64
	tossupThreshold float64
	slightThreshold float64
	narrowMargin    int
	blowoutMargin   int
	initialRating   float64
	policy          PolicyTable
}

// New creates an Engine with default tunables, adjusted by options.
func New(opts ...Option) *Engine {
	e := &Engine{
		ratings:         make(map[string]float64),
		baseDelta:       defaultBaseDelta,
		winningBonus:    defaultWinningBonus,
		tossupThreshold: defaultTossupThreshold,
		slightThreshold: defaultSlightThreshold,
		narrowMargin:    defaultNarrowMargin,
		blowoutMargin:   defaultBlowoutMargin,
		initialRating:   defaultInitialRating,
		policy:          DefaultPolicyTable(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Seed layers initial ratings under the configured default, e.g. from a
// carried-over season snapshot. Overwrites any state for those players.
func (e *Engine) Seed(initial map[string]float64) {
	for player, r := range initial {
		e.ratings[player] = r
	}
}

// Rating returns the player's current rating, inserting the configured
// default on first access. Lazy creation is part of this contract:
// a player exists in the mapping from the first time anything asks
// about them.
func (e *Engine) Rating(player string) float64 {
	r, ok := e.ratings[player]
	if !ok {
		r = e.initialRating
		e.ratings[player] = r
	}
	return r
}

// Rate folds every game into the rating state in chronological order
// (match date, then game sequence number). The input slice is not
// modified; ordering is enforced here because replaying games out of
// order yields different final ratings.
func (e *Engine) Rate(ctx context.Context, games []model.Game) ([]Update, error) {
	ordered := make([]model.Game, len(games))
	copy(ordered, games)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	updates := make([]Update, 0, len(ordered))
	for _, g := range ordered {
		if err := ctx.Err(); err != nil {
			return updates, fmt.Errorf("rating fold interrupted: %w", err)
		}
		u, err := e.Apply(g)
		if err != nil {
			return updates, err
		}
		updates = append(updates, u)
	}
	return updates, nil
}

// Apply folds a single game into the rating state. Forfeited games are
// skipped with no mutation. All four deltas are computed from the
// ratings as they stood before the game and committed together.
func (e *Engine) Apply(g model.Game) (Update, error) {
	if g.Forfeited() {
		return Update{Skipped: true}, nil
	}
	if g.Score1 == g.Score2 {
		return Update{}, fmt.Errorf("%w: match %s game %d", ErrTiedScore, g.MatchID, g.GameID)
	}

	r1 := e.Rating(g.Team1.Player1)
	r2 := e.Rating(g.Team1.Player2)
	r3 := e.Rating(g.Team2.Player1)
	r4 := e.Rating(g.Team2.Player2)

	team1Rating := (r1 + r2) / 2
	team2Rating := (r3 + r4) / 2
	ratingDiff := math.Abs(team1Rating - team2Rating)
	team1Won := g.Team1Won()

	outcome, level := e.classifyFavoredness(ratingDiff, team1Rating > team2Rating, team1Won)
	margin := classifyMargin(g.Margin(), e.narrowMargin, e.blowoutMargin)

	mult, ok := e.policy[PolicyKey{Outcome: outcome, Level: level, Margin: margin}]
	if !ok {
		mult = fallbackMultiplier
	}
	delta := e.baseDelta * mult / 2

	u := Update{
		Outcome:    outcome,
		Level:      level,
		Margin:     margin,
		RatingDiff: ratingDiff,
		Multiplier: mult,
		Delta:      delta,
	}
	if team1Won {
		e.ratings[g.Team1.Player1] = r1 + delta + e.winningBonus
		e.ratings[g.Team1.Player2] = r2 + delta + e.winningBonus
		e.ratings[g.Team2.Player1] = r3 - delta
		e.ratings[g.Team2.Player2] = r4 - delta
		u.Winners = g.Team1.Players()
		u.Losers = g.Team2.Players()
	} else {
		e.ratings[g.Team1.Player1] = r1 - delta
		e.ratings[g.Team1.Player2] = r2 - delta
		e.ratings[g.Team2.Player1] = r3 + delta + e.winningBonus
		e.ratings[g.Team2.Player2] = r4 + delta + e.winningBonus
		u.Winners = g.Team2.Players()
		u.Losers = g.Team1.Players()
	}

	return u, nil
}

// classifyFavoredness tags the game context. Tossups carry no level;
// otherwise the winner is favored when it was the higher-rated team.
func (e *Engine) classifyFavoredness(ratingDiff float64, team1Higher, team1Won bool) (Outcome, Level) {
	if ratingDiff < e.tossupThreshold {
		return Tossup, LevelNone
	}

	level := LevelHeavy
	if ratingDiff < e.slightThreshold {
		level = LevelSlight
	}
	if team1Won == team1Higher {
		return Favored, level
	}
	return Underdog, level
}

// Ratings returns a snapshot copy of the rating mapping.
func (e *Engine) Ratings() map[string]float64 {
	out := make(map[string]float64, len(e.ratings))
	for player, r := range e.ratings {
		out[player] = r
	}
	return out
}

// Rankings returns rating rows sorted by rating descending, ties broken
// alphabetically so output is deterministic. Team names come from the
// supplied first-seen attribution (may be nil).
func (e *Engine) Rankings(teamOf map[string]string) []types.RatingRow {
	rows := make([]types.RatingRow, 0, len(e.ratings))
	for player, r := range e.ratings {
		rows = append(rows, types.RatingRow{Player: player, Team: teamOf[player], Rating: r})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Rating != rows[j].Rating {
			return rows[i].Rating > rows[j].Rating
		}
		return rows[i].Player < rows[j].Player
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
