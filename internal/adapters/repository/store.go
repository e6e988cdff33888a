// Package repository holds the validated match-record store shared by
// every analysis component.
package repository

import (
	"sort"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/skill"
)

// Store is an append-only collection of validated games for one run.
// Forfeited games are kept (they arrived in the record) but every view
// used for computation filters them out.
type Store struct {
	games  []model.Game
	teamOf map[string]string // player -> team name, first occurrence wins
}

// New creates a Store over the given games.
func New(games ...model.Game) *Store {
	s := &Store{teamOf: make(map[string]string)}
	s.Add(games...)
	return s
}

// Add appends games and records first-seen team attribution for their
// players.
func (s *Store) Add(games ...model.Game) {
	for _, g := range games {
		s.games = append(s.games, g)
		if g.Forfeited() {
			continue
		}
		s.attribute(g.Team1)
		s.attribute(g.Team2)
	}
}

func (s *Store) attribute(side model.Side) {
	for _, p := range side.Players() {
		if _, ok := s.teamOf[p]; !ok {
			s.teamOf[p] = side.TeamName
		}
	}
}

// Len returns the total number of stored games, forfeits included.
func (s *Store) Len() int { return len(s.games) }

// Games returns a copy of every stored game.
func (s *Store) Games() []model.Game {
	out := make([]model.Game, len(s.games))
	copy(out, s.games)
	return out
}

// Played returns the non-forfeited games in insertion order.
func (s *Store) Played() []model.Game {
	out := make([]model.Game, 0, len(s.games))
	for _, g := range s.games {
		if !g.Forfeited() {
			out = append(out, g)
		}
	}
	return out
}

// Chronological returns the non-forfeited games sorted by match date,
// ties broken by game sequence number.
func (s *Store) Chronological() []model.Game {
	out := s.Played()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Players returns every player appearing in a non-forfeited game,
// sorted alphabetically.
func (s *Store) Players() []string {
	players := make([]string, 0, len(s.teamOf))
	for p := range s.teamOf {
		players = append(players, p)
	}
	sort.Strings(players)
	return players
}

// TeamOf returns a copy of the player -> team-name attribution.
func (s *Store) TeamOf() map[string]string {
	out := make(map[string]string, len(s.teamOf))
	for p, t := range s.teamOf {
		out[p] = t
	}
	return out
}

// Compositions renders the chronological game history as winner/loser
// pairs, the input shape of the external probabilistic estimator.
func (s *Store) Compositions() []skill.Composition {
	games := s.Chronological()
	out := make([]skill.Composition, 0, len(games))
	for _, g := range games {
		out = append(out, skill.Composition{
			Winners: g.Winner().Players(),
			Losers:  g.Loser().Players(),
		})
	}
	return out
}
