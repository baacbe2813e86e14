package variation_test

import (
	"errors"
	"testing"

	"github.com/okian/dugout/internal/domain/model"
	variation "github.com/okian/dugout/internal/domain/variation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApply(t *testing.T) {
	Convey("Given ranked composite rows and league standings", t, func() {
		rows := []model.CompositeScore{
			{TeamNumber: 4, Week: 9, StatsPowerRank: 3},
			{TeamNumber: 8, Week: 9, StatsPowerRank: 1},
			{TeamNumber: 2, Week: 9, StatsPowerRank: 2},
		}
		standings := []model.Standing{
			{TeamNumber: 4, Week: 9, Rank: 7},
			{TeamNumber: 8, Week: 9, Rank: 1},
			{TeamNumber: 2, Week: 9, Rank: 5},
		}

		Convey("When applying standings", func() {
			out, err := variation.Apply(rows, standings)

			Convey("Then variation is stats rank minus league rank", func() {
				So(err, ShouldBeNil)
				// Stats say 3rd, standings say 7th: lucky by four spots.
				So(out[0].LeagueRank, ShouldEqual, 7)
				So(out[0].ScoreVariation, ShouldEqual, -4)

				So(out[1].ScoreVariation, ShouldEqual, 0)
				So(out[2].ScoreVariation, ShouldEqual, -3)
			})

			Convey("Then the input rows stay untouched", func() {
				So(err, ShouldBeNil)
				So(rows[0].LeagueRank, ShouldEqual, 0)
				So(rows[0].ScoreVariation, ShouldEqual, 0)
			})
		})

		Convey("When a team has no standings entry", func() {
			_, err := variation.Apply(rows, standings[:2])

			Convey("Then application fails", func() {
				So(errors.Is(err, variation.ErrMissingStanding), ShouldBeTrue)
			})
		})

		Convey("When a team appears twice in the standings", func() {
			dup := append(standings, model.Standing{TeamNumber: 4, Week: 9, Rank: 2})
			_, err := variation.Apply(rows, dup)

			Convey("Then application fails", func() {
				So(errors.Is(err, variation.ErrInvalidStanding), ShouldBeTrue)
			})
		})

		Convey("When a standings rank is below one", func() {
			bad := []model.Standing{{TeamNumber: 4, Week: 9, Rank: 0}}
			_, err := variation.Apply(rows, bad)

			Convey("Then application fails", func() {
				So(errors.Is(err, variation.ErrInvalidStanding), ShouldBeTrue)
			})
		})
	})
}
