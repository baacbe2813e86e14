package elo_test

import (
	"errors"
	"testing"

	elo "github.com/okian/dugout/internal/domain/elo"
	"github.com/okian/dugout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func result(week, team, opp int, wins, oppWins, ties float64) model.MatchupResult {
	return model.MatchupResult{
		Week:           week,
		TeamNumber:     team,
		OpponentNumber: opp,
		CategoryWins:   wins,
		OpponentWins:   oppWins,
		Ties:           ties,
	}
}

func byTeamWeek(rows []model.EloRating) map[[2]int]model.EloRating {
	out := make(map[[2]int]model.EloRating, len(rows))
	for _, r := range rows {
		out[[2]int{r.TeamNumber, r.Week}] = r
	}
	return out
}

func TestSeason(t *testing.T) {
	Convey("Given a rater with default parameters", t, func() {
		r := elo.New()

		Convey("When two even teams split their categories", func() {
			rows, err := r.Season([]model.MatchupResult{
				result(1, 1, 2, 6, 6, 0),
				result(1, 2, 1, 6, 6, 0),
			})

			Convey("Then neither rating moves", func() {
				So(err, ShouldBeNil)
				got := byTeamWeek(rows)

				row := got[[2]int{1, 1}]
				So(row.Rating, ShouldEqual, 1000)
				So(row.Expected, ShouldAlmostEqual, 0, 1e-9)
				So(row.Actual, ShouldAlmostEqual, 0, 1e-9)
				So(row.NewRating, ShouldAlmostEqual, 1000, 1e-9)
			})
		})

		Convey("When an even team sweeps all twelve categories", func() {
			rows, err := r.Season([]model.MatchupResult{
				result(1, 1, 2, 12, 0, 0),
			})

			Convey("Then the win moves the rating by the full K factor", func() {
				So(err, ShouldBeNil)
				row := rows[0]
				So(row.Actual, ShouldAlmostEqual, 1, 1e-9)
				So(row.Expected, ShouldAlmostEqual, 0, 1e-9)
				So(row.NewRating, ShouldAlmostEqual, 1050, 1e-9)
			})
		})

		Convey("When results span two weeks", func() {
			rows, err := r.Season([]model.MatchupResult{
				result(2, 1, 2, 6, 6, 0),
				result(1, 1, 2, 12, 0, 0),
				result(1, 2, 1, 0, 12, 0),
				result(2, 2, 1, 6, 6, 0),
			})

			Convey("Then week two starts from week one's ratings", func() {
				So(err, ShouldBeNil)
				got := byTeamWeek(rows)

				So(got[[2]int{1, 1}].NewRating, ShouldAlmostEqual, 1050, 1e-9)
				So(got[[2]int{2, 1}].NewRating, ShouldAlmostEqual, 950, 1e-9)

				So(got[[2]int{1, 2}].Rating, ShouldAlmostEqual, 1050, 1e-9)
				So(got[[2]int{2, 2}].Rating, ShouldAlmostEqual, 950, 1e-9)
			})

			Convey("Then the favorite loses ground on an even split", func() {
				So(err, ShouldBeNil)
				got := byTeamWeek(rows)

				// Rated 100 points higher, team 1 was expected to win more
				// than half the categories; a 6-6 week costs it rating.
				week2 := got[[2]int{1, 2}]
				So(week2.Expected, ShouldBeGreaterThan, 0)
				So(week2.NewRating, ShouldBeLessThan, week2.Rating)
			})

			Convey("Then the series is ordered by week then team", func() {
				So(err, ShouldBeNil)
				So(rows[0].Week, ShouldEqual, 1)
				So(rows[0].TeamNumber, ShouldEqual, 1)
				So(rows[1].TeamNumber, ShouldEqual, 2)
				So(rows[2].Week, ShouldEqual, 2)
			})
		})

		Convey("When a team plays itself", func() {
			_, err := r.Season([]model.MatchupResult{result(1, 3, 3, 6, 6, 0)})

			Convey("Then the season is rejected", func() {
				So(errors.Is(err, elo.ErrInvalidResult), ShouldBeTrue)
			})
		})

		Convey("When there are no results", func() {
			_, err := r.Season(nil)

			Convey("Then the season is rejected", func() {
				So(errors.Is(err, elo.ErrNoResults), ShouldBeTrue)
			})
		})
	})

	Convey("Given a rater with custom parameters", t, func() {
		r := elo.New(
			elo.WithKFactor(100),
			elo.WithInitialRating(1500),
			elo.WithCategoriesPerMatchup(10),
		)

		Convey("When an even team sweeps every category", func() {
			rows, err := r.Season([]model.MatchupResult{
				result(1, 1, 2, 10, 0, 0),
			})

			Convey("Then the custom constants drive the update", func() {
				So(err, ShouldBeNil)
				row := rows[0]
				So(row.Rating, ShouldEqual, 1500)
				So(row.Actual, ShouldAlmostEqual, 1, 1e-9)
				So(row.NewRating, ShouldAlmostEqual, 1600, 1e-9)
			})
		})
	})
}
