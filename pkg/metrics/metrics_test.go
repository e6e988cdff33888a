package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			registryOpt := WithRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty namespace and subsystem", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithSubsystem(""), WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording ingestion metrics", func() {
			Convey("Then it should record ingested games", func() {
				So(func() {
					RecordGameIngested()
					RecordGameIngested()
					RecordGameIngested()
				}, ShouldNotPanic)
			})

			Convey("And it should record duplicate games", func() {
				So(func() {
					RecordDuplicateGame()
					RecordDuplicateGame()
				}, ShouldNotPanic)
			})

			Convey("And it should record bad-score skips", func() {
				So(func() {
					RecordBadScoreSkipped()
					RecordBadScoreSkipped()
				}, ShouldNotPanic)
			})

			Convey("And it should record forfeit exclusions", func() {
				So(func() {
					RecordForfeitSkipped()
					RecordForfeitSkipped()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording computation metrics", func() {
			Convey("Then it should record rating updates", func() {
				So(func() {
					RecordRatingUpdate()
					RecordRatingUpdate()
					RecordRatingUpdate()
				}, ShouldNotPanic)
			})

			Convey("And it should record scored partnerships", func() {
				So(func() {
					RecordPartnershipScored()
					RecordPartnershipScored()
				}, ShouldNotPanic)
			})

			Convey("And it should update run gauges", func() {
				So(func() {
					SetPlayersTracked(16)
					SetPlayersTracked(0)
					SetPoolsFound(2)
					SetPoolsFound(1)
				}, ShouldNotPanic)
			})

			Convey("And it should observe phase durations", func() {
				So(func() {
					ObservePhaseDuration("ratings", 0.05)
					ObservePhaseDuration("synergy", 0.02)
					ObservePhaseDuration("pools", 0.01)
					ObservePhaseDuration("", 0.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordGameIngested()
			families, err := Registry().Gather()

			Convey("Then the analyzer metrics are registered", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["pickle_analysis_games_ingested_total"], ShouldBeTrue)
				So(names["pickle_analysis_players_tracked"], ShouldBeTrue)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordGameIngested()
						RecordRatingUpdate()
						SetPlayersTracked(j)
						ObservePhaseDuration("ratings", float64(j))
					}
					done <- true
				}()
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue)
			})
		})
	})
}
