// Package service orchestrates a full analysis run: ingest, rating
// fold, synergy scoring, and pool partitioning, with reports written to
// an output stream.
package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/rebecca-draben/pickle-eyes/internal/adapters/report"
	"github.com/rebecca-draben/pickle-eyes/internal/adapters/repository"
	"github.com/rebecca-draben/pickle-eyes/internal/config"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/pools"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/rating"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/skill"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/synergy"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/types"
	"github.com/rebecca-draben/pickle-eyes/pkg/logger"
	"github.com/rebecca-draben/pickle-eyes/pkg/metrics"
)

// Mode selects which analyses a run performs.
type Mode string

// Run modes.
const (
	ModeRank    Mode = "rank"
	ModeSynergy Mode = "synergy"
	ModePools   Mode = "pools"
	ModeAll     Mode = "all"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRank, ModeSynergy, ModePools, ModeAll:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want rank, synergy, pools or all)", s)
	}
}

// Service runs analyses over a match-record store. Each Service owns
// fresh engine instances; nothing is shared across runs.
type Service struct {
	cfg         *config.Config
	log         logger.Logger
	seedRatings map[string]float64
	strengths   skill.Source // optional override for the synergy pass
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeedRatings layers initial ratings (e.g. a prior season snapshot)
// under the configured default.
func WithSeedRatings(seed map[string]float64) Option {
	return func(s *Service) {
		s.seedRatings = seed
	}
}

// WithStrengthSource overrides where the synergy pass gets its player
// strengths, e.g. an adapter over an external probabilistic estimator.
// Without it the contextual engine's ratings are used.
func WithStrengthSource(src skill.Source) Option {
	return func(s *Service) {
		s.strengths = src
	}
}

// New constructs a Service for the given configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s, nil
}

// Result carries everything a run produced.
type Result struct {
	Ratings   []types.RatingRow
	Strengths skill.Strengths
	Synergies []types.SynergyRow
	Pools     []types.Pool
}

// Run executes the analyses selected by mode over the store and writes
// the corresponding reports to out.
func (s *Service) Run(ctx context.Context, mode Mode, store *repository.Store, out io.Writer) (*Result, error) {
	runID := uuid.New().String()
	log := s.log.Named("run")
	log.Info(ctx, "starting analysis run",
		logger.String("run_id", runID),
		logger.String("mode", string(mode)),
		logger.Int("games", store.Len()),
		logger.Int("players", len(store.Players())))

	forfeits := store.Len() - len(store.Played())
	for i := 0; i < forfeits; i++ {
		metrics.RecordForfeitSkipped()
	}
	metrics.SetPlayersTracked(len(store.Players()))

	res := &Result{}

	if mode == ModeRank || mode == ModeSynergy || mode == ModeAll {
		if err := s.runRatings(ctx, mode, store, res, out); err != nil {
			return nil, err
		}
	}

	if mode == ModeSynergy || mode == ModeAll {
		if err := s.runSynergy(ctx, store, res, out); err != nil {
			return nil, err
		}
	}

	if mode == ModePools || mode == ModeAll {
		if err := s.runPools(ctx, store, res, out); err != nil {
			return nil, err
		}
	}

	log.Info(ctx, "analysis run finished", logger.String("run_id", runID))
	return res, nil
}

// runRatings folds the store chronologically through the contextual
// engine. In synergy-only mode the table is computed (the default
// strength source) but not written.
func (s *Service) runRatings(ctx context.Context, mode Mode, store *repository.Store, res *Result, out io.Writer) error {
	start := time.Now()

	engine := rating.New(
		rating.WithBaseDelta(s.cfg.BaseDelta),
		rating.WithWinningBonus(s.cfg.WinningBonus),
		rating.WithThresholds(s.cfg.TossupThreshold, s.cfg.SlightThreshold),
		rating.WithMargins(s.cfg.NarrowMargin, s.cfg.BlowoutMargin),
		rating.WithInitialRating(s.cfg.InitialRating),
	)
	if len(s.cfg.Multipliers) > 0 {
		table, err := rating.ParsePolicyTable(s.cfg.Multipliers)
		if err != nil {
			return fmt.Errorf("policy table: %w", err)
		}
		rating.WithPolicyTable(table)(engine)
	}
	if s.seedRatings != nil {
		engine.Seed(s.seedRatings)
	}

	updates, err := engine.Rate(ctx, store.Played())
	if err != nil {
		return fmt.Errorf("rating fold: %w", err)
	}
	for _, u := range updates {
		if u.Skipped {
			continue
		}
		metrics.RecordRatingUpdate()
		s.log.Debug(ctx, "rating update",
			logger.String("outcome", string(u.Outcome)),
			logger.String("level", string(u.Level)),
			logger.String("margin", string(u.Margin)),
			logger.Float64("multiplier", u.Multiplier),
			logger.Float64("delta", u.Delta))
	}

	res.Ratings = engine.Rankings(store.TeamOf())
	res.Strengths = skill.FromRatings(engine.Ratings())
	metrics.ObservePhaseDuration("rating", time.Since(start).Seconds())

	if mode == ModeSynergy {
		return nil
	}
	if err := report.WriteRatings(out, res.Ratings); err != nil {
		return err
	}
	return nil
}

func (s *Service) runSynergy(ctx context.Context, store *repository.Store, res *Result, out io.Writer) error {
	start := time.Now()

	strengths := res.Strengths
	if s.strengths != nil {
		strengths = s.strengths.Strengths()
	}

	analyzer := synergy.New(synergy.WithMinGames(s.cfg.MinGames))
	for _, g := range store.Played() {
		analyzer.Observe(g)
	}
	rows, err := analyzer.Score(strengths)
	if err != nil {
		return fmt.Errorf("synergy scoring: %w", err)
	}
	for range rows {
		metrics.RecordPartnershipScored()
	}
	res.Synergies = rows
	metrics.ObservePhaseDuration("synergy", time.Since(start).Seconds())

	s.log.Info(ctx, "synergy pass complete",
		logger.Int("partnerships", analyzer.Partnerships()),
		logger.Int("scored", len(rows)))

	return report.WriteSynergies(out, rows)
}

func (s *Service) runPools(ctx context.Context, store *repository.Store, res *Result, out io.Writer) error {
	start := time.Now()

	part := pools.New()
	for _, g := range store.Played() {
		part.Observe(g)
	}
	res.Pools = part.Pools()
	metrics.SetPoolsFound(len(res.Pools))
	metrics.ObservePhaseDuration("pools", time.Since(start).Seconds())

	if len(res.Pools) > 1 {
		s.log.Warn(ctx, "players are split into disconnected pools; rankings are not mutually comparable",
			logger.Int("pools", len(res.Pools)))
	}

	return report.WritePools(out, res.Pools)
}
