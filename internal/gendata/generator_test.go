package gendata

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/rebecca-draben/pickle-eyes/internal/adapters/ingest"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	convey.Convey("Given a generator with an explicit config", t, func() {
		cfg := Config{
			Teams:          3,
			PlayersPerTeam: 4,
			Matches:        10,
			GamesPerMatch:  2,
			StartDate:      time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			Seed:           7,
		}

		convey.Convey("When games are generated", func() {
			games := New(cfg).Generate()

			convey.Convey("Then every match yields the configured game count", func() {
				convey.So(games, convey.ShouldHaveLength, cfg.Matches*cfg.GamesPerMatch)
			})

			convey.Convey("Then games within a match share id and date", func() {
				first, second := games[0], games[1]
				convey.So(second.MatchID, convey.ShouldEqual, first.MatchID)
				convey.So(second.Date.Equal(first.Date), convey.ShouldBeTrue)
				convey.So(games[2].MatchID, convey.ShouldNotEqual, first.MatchID)
			})

			convey.Convey("Then matches advance one day at a time", func() {
				convey.So(games[0].Date.Equal(cfg.StartDate), convey.ShouldBeTrue)
				convey.So(games[2].Date.Equal(cfg.StartDate.AddDate(0, 0, 1)), convey.ShouldBeTrue)
			})

			convey.Convey("Then sides come from distinct teams with distinct players", func() {
				for _, g := range games {
					convey.So(g.Team1.TeamName, convey.ShouldNotEqual, g.Team2.TeamName)
					convey.So(g.Team1.Player1, convey.ShouldNotEqual, g.Team1.Player2)
					convey.So(g.Team2.Player1, convey.ShouldNotEqual, g.Team2.Player2)
				}
			})

			convey.Convey("Then every game has a decisive rally score", func() {
				for _, g := range games {
					convey.So(g.Forfeited(), convey.ShouldBeFalse)
					convey.So(g.Margin(), convey.ShouldBeGreaterThan, 0)
					high, low := g.Score1, g.Score2
					if low > high {
						high, low = low, high
					}
					convey.So(high, convey.ShouldEqual, 11)
					convey.So(low, convey.ShouldBeLessThanOrEqualTo, 9)
				}
			})
		})

		convey.Convey("When the same seed is used twice", func() {
			a := New(cfg).Generate()
			b := New(cfg).Generate()

			convey.Convey("Then everything except the random match ids matches", func() {
				convey.So(b, convey.ShouldHaveLength, len(a))
				for i := range a {
					convey.So(b[i].Team1, convey.ShouldResemble, a[i].Team1)
					convey.So(b[i].Team2, convey.ShouldResemble, a[i].Team2)
					convey.So(b[i].Score1, convey.ShouldEqual, a[i].Score1)
					convey.So(b[i].Score2, convey.ShouldEqual, a[i].Score2)
					convey.So(b[i].GameID, convey.ShouldEqual, a[i].GameID)
				}
			})
		})

		convey.Convey("When the forfeit rate is one", func() {
			cfg.ForfeitRate = 1
			games := New(cfg).Generate()

			convey.Convey("Then every game is an eleven-nil forfeit", func() {
				for _, g := range games {
					convey.So(g.Forfeited(), convey.ShouldBeTrue)
					convey.So(g.Team2.Player1, convey.ShouldEqual, model.DefaultPlayer)
					convey.So(g.Score1, convey.ShouldEqual, 11)
					convey.So(g.Score2, convey.ShouldEqual, 0)
				}
			})
		})
	})

	convey.Convey("Given a zero config", t, func() {
		convey.Convey("When games are generated", func() {
			games := New(Config{}).Generate()

			convey.Convey("Then defaults produce a full schedule", func() {
				convey.So(games, convey.ShouldHaveLength, defaultMatches*defaultGamesPerMatch)
			})
		})
	})
}

func TestWriteCSV(t *testing.T) {
	convey.Convey("Given a generated schedule", t, func() {
		cfg := Config{Matches: 8, ForfeitRate: 0.2, Seed: 11}
		games := New(cfg).Generate()

		convey.Convey("When it is written as CSV and read back", func() {
			var buf bytes.Buffer
			err := WriteCSV(&buf, games)
			convey.So(err, convey.ShouldBeNil)

			parsed, err := ingest.NewReader().Read(context.Background(), &buf)

			convey.Convey("Then every generated game survives the round trip", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(parsed, convey.ShouldHaveLength, len(games))
				for i := range games {
					convey.So(parsed[i].MatchID, convey.ShouldEqual, games[i].MatchID)
					convey.So(parsed[i].GameID, convey.ShouldEqual, games[i].GameID)
					convey.So(parsed[i].Date.Equal(games[i].Date), convey.ShouldBeTrue)
					convey.So(parsed[i].Team1, convey.ShouldResemble, games[i].Team1)
					convey.So(parsed[i].Team2, convey.ShouldResemble, games[i].Team2)
					convey.So(parsed[i].Score1, convey.ShouldEqual, games[i].Score1)
					convey.So(parsed[i].Score2, convey.ShouldEqual, games[i].Score2)
				}
			})
		})
	})
}
