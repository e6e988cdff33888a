package model_test

import (
	"testing"
	"time"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func day(d string) time.Time {
	t, _ := time.Parse("2006-01-02", d)
	return t
}

func TestGame(t *testing.T) {
	convey.Convey("Given a recorded game", t, func() {
		g := model.Game{
			MatchID: "m1",
			GameID:  2,
			Date:    day("2024-10-05"),
			Team1:   model.Side{TeamName: "Dill Pickles", Player1: "Alice", Player2: "Bob"},
			Team2:   model.Side{TeamName: "Smash Bros", Player1: "Cara", Player2: "Dan"},
			Score1:  11,
			Score2:  7,
		}

		convey.Convey("Then winner, loser and margin follow the scores", func() {
			convey.So(g.Team1Won(), convey.ShouldBeTrue)
			convey.So(g.Winner().Player1, convey.ShouldEqual, "Alice")
			convey.So(g.Loser().Player1, convey.ShouldEqual, "Cara")
			convey.So(g.Margin(), convey.ShouldEqual, 4)
			convey.So(g.Forfeited(), convey.ShouldBeFalse)
		})

		convey.Convey("When team 2 scored higher", func() {
			g.Score1, g.Score2 = 5, 11

			convey.Convey("Then team 2 wins and margin stays positive", func() {
				convey.So(g.Team1Won(), convey.ShouldBeFalse)
				convey.So(g.Winner().TeamName, convey.ShouldEqual, "Smash Bros")
				convey.So(g.Margin(), convey.ShouldEqual, 6)
			})
		})

		convey.Convey("When any player slot holds the forfeit sentinel", func() {
			g.Team2.Player2 = model.DefaultPlayer

			convey.Convey("Then the game counts as forfeited", func() {
				convey.So(g.Team2.Forfeited(), convey.ShouldBeTrue)
				convey.So(g.Forfeited(), convey.ShouldBeTrue)
			})
		})
	})
}

func TestGameOrdering(t *testing.T) {
	convey.Convey("Given games on different dates", t, func() {
		earlier := model.Game{Date: day("2024-10-01"), GameID: 3}
		later := model.Game{Date: day("2024-10-02"), GameID: 1}

		convey.Convey("Then date decides the order", func() {
			convey.So(earlier.Before(later), convey.ShouldBeTrue)
			convey.So(later.Before(earlier), convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given games on the same date", t, func() {
		first := model.Game{Date: day("2024-10-01"), GameID: 1}
		second := model.Game{Date: day("2024-10-01"), GameID: 2}

		convey.Convey("Then the game sequence number breaks the tie", func() {
			convey.So(first.Before(second), convey.ShouldBeTrue)
			convey.So(second.Before(first), convey.ShouldBeFalse)
		})
	})
}

func TestPairKey(t *testing.T) {
	convey.Convey("Given the same pair in either order", t, func() {
		ab := model.NewPairKey("Alice", "Bob")
		ba := model.NewPairKey("Bob", "Alice")

		convey.Convey("Then the keys collide and render canonically", func() {
			convey.So(ab, convey.ShouldResemble, ba)
			convey.So(ab.String(), convey.ShouldEqual, "Alice + Bob")
		})
	})
}
