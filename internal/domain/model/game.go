// Package model contains domain models passed between layers.
package model

import "time"

// DefaultPlayer is the sentinel name recorded when a team forfeited a
// game. Games carrying it in any player slot are excluded from every
// computation downstream.
const DefaultPlayer = "DEFAULT"

// Side is one team's half of a game: the club-level team name and
// exactly two named player slots.
type Side struct {
	TeamName string
	Player1  string
	Player2  string
}

// Players returns the side's two player names.
func (s Side) Players() [2]string {
	return [2]string{s.Player1, s.Player2}
}

// Forfeited reports whether either slot holds the forfeit sentinel.
func (s Side) Forfeited() bool {
	return s.Player1 == DefaultPlayer || s.Player2 == DefaultPlayer
}

// Game represents a single recorded doubles game. Immutable once
// ingested; Team1's score is Score1 and Team2's is Score2.
type Game struct {
	MatchID string    // opaque identifier for traceability
	GameID  int       // sequence number within the match
	Date    time.Time // match date, day resolution
	Team1   Side
	Team2   Side
	Score1  int
	Score2  int
}

// Forfeited reports whether either side defaulted.
func (g Game) Forfeited() bool {
	return g.Team1.Forfeited() || g.Team2.Forfeited()
}

// Team1Won reports whether team 1 scored higher. Ties are rejected at
// ingestion and never reach the domain.
func (g Game) Team1Won() bool {
	return g.Score1 > g.Score2
}

// Winner returns the winning side.
func (g Game) Winner() Side {
	if g.Team1Won() {
		return g.Team1
	}
	return g.Team2
}

// Loser returns the losing side.
func (g Game) Loser() Side {
	if g.Team1Won() {
		return g.Team2
	}
	return g.Team1
}

// Margin returns the absolute score difference.
func (g Game) Margin() int {
	m := g.Score1 - g.Score2
	if m < 0 {
		return -m
	}
	return m
}

// Players returns the four player names, team 1 first.
func (g Game) Players() [4]string {
	return [4]string{g.Team1.Player1, g.Team1.Player2, g.Team2.Player1, g.Team2.Player2}
}

// Before orders games chronologically, breaking date ties by the game
// sequence number. The rating fold depends on this ordering.
func (g Game) Before(other Game) bool {
	if !g.Date.Equal(other.Date) {
		return g.Date.Before(other.Date)
	}
	return g.GameID < other.GameID
}

// PairKey is the canonical key for an unordered pair of players, so
// {A,B} and {B,A} collide.
type PairKey struct {
	First  string
	Second string
}

// NewPairKey canonicalizes two player names into a PairKey.
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{First: a, Second: b}
}

// String renders the pair as "A + B".
func (k PairKey) String() string {
	return k.First + " + " + k.Second
}
