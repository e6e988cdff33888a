// Package gendata generates schema-valid synthetic match data for
// trying out the analyzer without a real league export.
package gendata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
)

// Default generation constants.
const (
	defaultTeams          = 4
	defaultPlayersPerTeam = 4
	defaultMatches        = 20
	defaultGamesPerMatch  = 3
	defaultSeed           = 42
	winningScore          = 11
	maxLosingScore        = 9
)

// Config controls generation.
type Config struct {
	Teams          int
	PlayersPerTeam int
	Matches        int
	GamesPerMatch  int
	StartDate      time.Time
	ForfeitRate    float64 // probability that a game is a forfeit
	Seed           int64
}

// Generator produces random but reproducible league schedules.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	rosters [][]string // players per team
	teams   []string
}

// New creates a Generator, filling zero Config fields with defaults.
func New(cfg Config) *Generator {
	if cfg.Teams < 2 {
		cfg.Teams = defaultTeams
	}
	if cfg.PlayersPerTeam < 2 {
		cfg.PlayersPerTeam = defaultPlayersPerTeam
	}
	if cfg.Matches <= 0 {
		cfg.Matches = defaultMatches
	}
	if cfg.GamesPerMatch <= 0 {
		cfg.GamesPerMatch = defaultGamesPerMatch
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	g := &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // deterministic seed for reproducible data
	}
	for t := 0; t < cfg.Teams; t++ {
		name := fmt.Sprintf("Team %c", 'A'+t)
		g.teams = append(g.teams, name)
		roster := make([]string, cfg.PlayersPerTeam)
		for p := 0; p < cfg.PlayersPerTeam; p++ {
			roster[p] = fmt.Sprintf("%s Player %d", name, p+1)
		}
		g.rosters = append(g.rosters, roster)
	}
	return g
}

// Generate produces the configured number of matches, one match per
// day, each a set of games between two randomly drawn teams.
func (g *Generator) Generate() []model.Game {
	var games []model.Game
	for m := 0; m < g.cfg.Matches; m++ {
		matchID := uuid.New().String()
		date := g.cfg.StartDate.AddDate(0, 0, m)

		t1 := g.rng.Intn(len(g.teams))
		t2 := g.rng.Intn(len(g.teams) - 1)
		if t2 >= t1 {
			t2++
		}

		for gameID := 1; gameID <= g.cfg.GamesPerMatch; gameID++ {
			side1 := g.drawSide(t1)
			side2 := g.drawSide(t2)
			game := model.Game{
				MatchID: matchID,
				GameID:  gameID,
				Date:    date,
				Team1:   side1,
				Team2:   side2,
			}

			if g.rng.Float64() < g.cfg.ForfeitRate {
				game.Team2.Player1 = model.DefaultPlayer
				game.Team2.Player2 = model.DefaultPlayer
				game.Score1, game.Score2 = winningScore, 0
			} else {
				losing := g.rng.Intn(maxLosingScore + 1)
				if g.rng.Intn(2) == 0 {
					game.Score1, game.Score2 = winningScore, losing
				} else {
					game.Score1, game.Score2 = losing, winningScore
				}
			}
			games = append(games, game)
		}
	}
	return games
}

// drawSide picks two distinct players from a team's roster.
func (g *Generator) drawSide(team int) model.Side {
	roster := g.rosters[team]
	i := g.rng.Intn(len(roster))
	j := g.rng.Intn(len(roster) - 1)
	if j >= i {
		j++
	}
	return model.Side{TeamName: g.teams[team], Player1: roster[i], Player2: roster[j]}
}

// WriteCSV writes games in the match-record schema.
func WriteCSV(w io.Writer, games []model.Game) error {
	cw := csv.NewWriter(w)
	header := []string{
		"match_id", "game_id", "match_date",
		"team1_name", "team2_name",
		"partner1", "partner2", "opponent1", "opponent2",
		"team1_points", "team2_points",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, g := range games {
		record := []string{
			g.MatchID,
			strconv.Itoa(g.GameID),
			g.Date.Format("2006-01-02"),
			g.Team1.TeamName,
			g.Team2.TeamName,
			g.Team1.Player1,
			g.Team1.Player2,
			g.Team2.Player1,
			g.Team2.Player2,
			strconv.Itoa(g.Score1),
			strconv.Itoa(g.Score2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write game: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
