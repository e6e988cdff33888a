// Package ingest reads and validates match-record CSV files. Structural
// problems (missing columns, bad dates, tied scores) are fatal before
// any analysis runs; per-game problems the domain tolerates
// (unparseable scores, duplicated game ids) are logged and skipped.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/pkg/logger"
	"github.com/rebecca-draben/pickle-eyes/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Required header columns, matching the record schema.
var requiredColumns = []string{
	"match_id", "game_id", "match_date",
	"team1_name", "team2_name",
	"partner1", "partner2", "opponent1", "opponent2",
	"team1_points", "team2_points",
}

// gameKey identifies a game record for duplicate detection.
type gameKey struct {
	matchID string
	gameID  int
}

// Reader parses match-record CSVs. A Reader tracks seen game ids, so
// one instance covers one ingestion run.
type Reader struct {
	log  logger.Logger
	seen map[gameKey]bool
}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{
		log:  logger.Named("ingest"),
		seen: make(map[gameKey]bool),
	}
}

// ReadFile reads and validates every game record in the named CSV file.
func (r *Reader) ReadFile(ctx context.Context, path string) ([]model.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match data: %w", err)
	}
	defer f.Close()
	return r.Read(ctx, f)
}

// Read reads and validates game records from a CSV stream. Returned
// games include forfeits (flagged via the sentinel player); downstream
// components filter them.
func (r *Reader) Read(ctx context.Context, src io.Reader) ([]model.Game, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil // empty input is a no-op, not an error
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var games []model.Game
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		g, skip, err := r.parseRecord(ctx, cols, record, line)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		games = append(games, g)
		metrics.RecordGameIngested()
	}
	return games, nil
}

// ReadRatingsFile reads an initial-ratings CSV (player,rating) used to
// seed the contextual engine from a prior snapshot.
func (r *Reader) ReadRatingsFile(ctx context.Context, path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 2

	ratings := make(map[string]float64)
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ratings line %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "player") {
			continue // header
		}
		player := strings.TrimSpace(record[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("ratings line %d: bad rating for %s: %w", line, player, err)
		}
		ratings[player] = v
	}
	return ratings, nil
}

// parseRecord validates one row. skip=true means the row was logged and
// dropped (bad score, duplicate); an error aborts the whole ingestion.
func (r *Reader) parseRecord(ctx context.Context, cols map[string]int, record []string, line int) (model.Game, bool, error) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	for _, name := range requiredColumns {
		if name == "team1_points" || name == "team2_points" {
			continue // score validation below has its own semantics
		}
		if field(name) == "" {
			return model.Game{}, false, fmt.Errorf("line %d: %w: %s", line, ErrMissingField, name)
		}
	}

	gameID, err := strconv.Atoi(field("game_id"))
	if err != nil {
		return model.Game{}, false, fmt.Errorf("line %d: %w: %q", line, ErrBadGameID, field("game_id"))
	}

	date, err := time.Parse(dateLayout, field("match_date"))
	if err != nil {
		return model.Game{}, false, fmt.Errorf("line %d: %w: %q", line, ErrBadDate, field("match_date"))
	}

	g := model.Game{
		MatchID: field("match_id"),
		GameID:  gameID,
		Date:    date,
		Team1: model.Side{
			TeamName: field("team1_name"),
			Player1:  field("partner1"),
			Player2:  field("partner2"),
		},
		Team2: model.Side{
			TeamName: field("team2_name"),
			Player1:  field("opponent1"),
			Player2:  field("opponent2"),
		},
	}

	if !g.Forfeited() {
		if g.Team1.Player1 == g.Team1.Player2 || g.Team2.Player1 == g.Team2.Player2 {
			return model.Game{}, false, fmt.Errorf("line %d: %w", line, ErrSamePlayer)
		}
	}

	key := gameKey{matchID: g.MatchID, gameID: g.GameID}
	if r.seen[key] {
		r.log.Warn(ctx, "skipping duplicate game record",
			logger.String("match_id", g.MatchID), logger.Int("game_id", g.GameID), logger.Int("line", line))
		metrics.RecordDuplicateGame()
		return model.Game{}, true, nil
	}

	s1, err1 := strconv.Atoi(field("team1_points"))
	s2, err2 := strconv.Atoi(field("team2_points"))
	if err1 != nil || err2 != nil || s1 < 0 || s2 < 0 {
		r.log.Warn(ctx, "skipping game with unparseable score",
			logger.String("match_id", g.MatchID), logger.Int("game_id", g.GameID), logger.Int("line", line))
		metrics.RecordBadScoreSkipped()
		return model.Game{}, true, nil
	}
	if s1 == s2 && !g.Forfeited() {
		return model.Game{}, false, fmt.Errorf("line %d: %w: %d-%d", line, ErrTiedScore, s1, s2)
	}
	g.Score1, g.Score2 = s1, s2

	r.seen[key] = true
	return g, false, nil
}

// indexColumns maps required column names to their header positions.
func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return idx, nil
}
