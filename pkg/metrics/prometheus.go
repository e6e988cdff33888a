// Package metrics provides Prometheus metrics for analysis runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages the Prometheus metrics for the analyzer.
type Manager struct {
	namespace string
	subsystem string
	registry  prometheus.Registerer

	// Ingestion quality
	gamesIngested  prometheus.Counter
	duplicateGames prometheus.Counter
	badScoreSkips  prometheus.Counter
	forfeitSkips   prometheus.Counter

	// Computation
	ratingUpdates       prometheus.Counter
	partnershipsScored  prometheus.Counter
	playersTracked      prometheus.Gauge
	poolsFound          prometheus.Gauge
	phaseDurationSecond *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "pickle",
		subsystem: "analysis",
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.gamesIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_ingested_total",
		Help:      "Total number of validated game records accepted",
	})
	m.duplicateGames = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_duplicate_total",
		Help:      "Total number of duplicate game records skipped",
	})
	m.badScoreSkips = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_bad_score_total",
		Help:      "Total number of games skipped for unparseable scores",
	})
	m.forfeitSkips = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_forfeit_total",
		Help:      "Total number of forfeited games excluded from computation",
	})
	m.ratingUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_updates_total",
		Help:      "Total number of games folded into the rating state",
	})
	m.partnershipsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "partnerships_scored_total",
		Help:      "Total number of partnerships appearing in synergy output",
	})
	m.playersTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_tracked",
		Help:      "Number of distinct players in the current run",
	})
	m.poolsFound = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pools_found",
		Help:      "Number of disconnected competitive pools in the current run",
	})
	m.phaseDurationSecond = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "phase_duration_seconds",
			Help:      "Duration of each analysis phase",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"phase"},
	)
}

// Registry returns the registry metrics are registered on, for optional
// exposition.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording on the global manager.

// RecordGameIngested increments the accepted-game counter.
func RecordGameIngested() { globalManager.gamesIngested.Inc() }

// RecordDuplicateGame increments the duplicate-record counter.
func RecordDuplicateGame() { globalManager.duplicateGames.Inc() }

// RecordBadScoreSkipped increments the unparseable-score counter.
func RecordBadScoreSkipped() { globalManager.badScoreSkips.Inc() }

// RecordForfeitSkipped increments the forfeit-exclusion counter.
func RecordForfeitSkipped() { globalManager.forfeitSkips.Inc() }

// RecordRatingUpdate increments the rating-fold counter.
func RecordRatingUpdate() { globalManager.ratingUpdates.Inc() }

// RecordPartnershipScored increments the scored-partnership counter.
func RecordPartnershipScored() { globalManager.partnershipsScored.Inc() }

// SetPlayersTracked sets the distinct-player gauge.
func SetPlayersTracked(n int) { globalManager.playersTracked.Set(float64(n)) }

// SetPoolsFound sets the pool-count gauge.
func SetPoolsFound(n int) { globalManager.poolsFound.Set(float64(n)) }

// ObservePhaseDuration records how long an analysis phase took.
func ObservePhaseDuration(phase string, seconds float64) {
	globalManager.phaseDurationSecond.WithLabelValues(phase).Observe(seconds)
}
