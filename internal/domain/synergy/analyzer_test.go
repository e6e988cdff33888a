package synergy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/skill"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/synergy"
	"github.com/smartystreets/goconvey/convey"
)

func game(p1, p2, o1, o2 string, s1, s2 int) model.Game {
	return model.Game{
		MatchID: "m1",
		GameID:  1,
		Date:    time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		Team1:   model.Side{TeamName: "Dill Pickles", Player1: p1, Player2: p2},
		Team2:   model.Side{TeamName: "Smash Bros", Player1: o1, Player2: o2},
		Score1:  s1,
		Score2:  s2,
	}
}

func evenStrengths() skill.Strengths {
	return skill.Strengths{"Alice": 3.5, "Bob": 3.5, "Cara": 3.5, "Dan": 3.5, "Eve": 3.5}
}

func TestAnalyzerScore(t *testing.T) {
	convey.Convey("Given a pair that wins both its games against equal opposition", t, func() {
		a := synergy.New()
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 5))
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 7))

		rows, err := a.Score(evenStrengths())

		convey.Convey("Then both partnerships are scored symmetrically", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(rows, convey.ShouldHaveLength, 2)

			// Equal strengths mean a 0.5 expectation per game.
			convey.So(rows[0].Partnership, convey.ShouldEqual, "Alice + Bob")
			convey.So(rows[0].SynergyScore, convey.ShouldAlmostEqual, 50)
			convey.So(rows[0].WinRate, convey.ShouldAlmostEqual, 1.0)
			convey.So(rows[0].Games, convey.ShouldEqual, 2)
			convey.So(rows[0].AvgScoreDiff, convey.ShouldAlmostEqual, 5)
			convey.So(rows[0].IndividualStrength, convey.ShouldAlmostEqual, 7)
			convey.So(rows[0].Team, convey.ShouldEqual, "Dill Pickles")
			convey.So(rows[0].Rank, convey.ShouldEqual, 1)

			convey.So(rows[1].Partnership, convey.ShouldEqual, "Cara + Dan")
			convey.So(rows[1].SynergyScore, convey.ShouldAlmostEqual, -50)
			convey.So(rows[1].WinRate, convey.ShouldAlmostEqual, 0)
			convey.So(rows[1].AvgScoreDiff, convey.ShouldAlmostEqual, -5)
			convey.So(rows[1].Rank, convey.ShouldEqual, 2)
		})
	})

	convey.Convey("Given a partnership below the minimum game count", t, func() {
		a := synergy.New()
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 5))
		a.Observe(game("Alice", "Bob", "Cara", "Eve", 11, 7))

		rows, err := a.Score(evenStrengths())

		convey.Convey("Then only the pair with two games appears", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(rows, convey.ShouldHaveLength, 1)
			convey.So(rows[0].Partnership, convey.ShouldEqual, "Alice + Bob")
			convey.So(a.Partnerships(), convey.ShouldEqual, 3)
		})

		convey.Convey("When the minimum is lowered to one", func() {
			low := synergy.New(synergy.WithMinGames(1))
			low.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 5))

			rows, err := low.Score(evenStrengths())

			convey.Convey("Then single-game pairs are scored", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rows, convey.ShouldHaveLength, 2)
			})
		})
	})

	convey.Convey("Given a player missing from the strength mapping", t, func() {
		a := synergy.New()
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 5))
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 7))

		_, err := a.Score(skill.Strengths{"Alice": 3.5, "Bob": 3.5, "Cara": 3.5})

		convey.Convey("Then scoring fails with the sentinel", func() {
			convey.So(errors.Is(err, synergy.ErrUnknownPlayer), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "Dan")
		})
	})

	convey.Convey("Given a forfeited game", t, func() {
		a := synergy.New()
		a.Observe(game("Alice", "Bob", model.DefaultPlayer, "Dan", 11, 0))

		convey.Convey("Then nothing is tracked", func() {
			convey.So(a.Partnerships(), convey.ShouldEqual, 0)
		})
	})

	convey.Convey("Given no games at all", t, func() {
		a := synergy.New()
		rows, err := a.Score(skill.Strengths{})

		convey.Convey("Then the output is empty, not an error", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(rows, convey.ShouldBeEmpty)
		})
	})
}

func TestAnalyzerExpectationModel(t *testing.T) {
	convey.Convey("Given a strong pair beating a weak pair", t, func() {
		a := synergy.New()
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 3))
		a.Observe(game("Alice", "Bob", "Cara", "Dan", 11, 4))

		strengths := skill.Strengths{"Alice": 6, "Bob": 6, "Cara": 2, "Dan": 2}
		rows, err := a.Score(strengths)

		convey.Convey("Then expected wins earn little synergy credit", func() {
			convey.So(err, convey.ShouldBeNil)
			// expected = 1/(1+10^((4-12)/10)) per game
			expected := 1 / (1 + 0.15848931924611134)
			convey.So(rows[0].Partnership, convey.ShouldEqual, "Alice + Bob")
			convey.So(rows[0].SynergyScore, convey.ShouldAlmostEqual, (1-expected)*100, 0.001)
			convey.So(rows[0].SynergyScore, convey.ShouldBeLessThan, 50)
		})
	})
}
