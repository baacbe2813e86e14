package league_test

import (
	"errors"
	"testing"

	league "github.com/okian/dugout/internal/domain/league"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given league membership data", t, func() {
		managers := []string{"carol", "alice", "bob"}
		seats := map[league.Seat]string{
			{Year: 2023, TeamNumber: 1}: "alice",
			{Year: 2023, TeamNumber: 2}: "bob",
			{Year: 2024, TeamNumber: 1}: "bob",
			{Year: 2024, TeamNumber: 2}: "alice",
			{Year: 2024, TeamNumber: 3}: "carol",
		}

		Convey("When building the config", func() {
			lg, err := league.New(managers, seats)

			Convey("Then managers come back in stable alphabetical order", func() {
				So(err, ShouldBeNil)
				So(lg.Managers(), ShouldResemble, []string{"alice", "bob", "carol"})
				So(lg.Size(), ShouldEqual, 3)
			})

			Convey("Then seat lookups follow the year", func() {
				So(err, ShouldBeNil)

				// Team numbers reshuffled between seasons.
				mgr, err := lg.Manager(2023, 1)
				So(err, ShouldBeNil)
				So(mgr, ShouldEqual, "alice")

				mgr, err = lg.Manager(2024, 1)
				So(err, ShouldBeNil)
				So(mgr, ShouldEqual, "bob")
			})

			Convey("Then unknown seats fail", func() {
				So(err, ShouldBeNil)
				_, mErr := lg.Manager(2022, 1)
				So(errors.Is(mErr, league.ErrUnknownManager), ShouldBeTrue)
			})

			Convey("Then years list every seated season ascending", func() {
				So(err, ShouldBeNil)
				So(lg.Years(), ShouldResemble, []int{2023, 2024})
			})
		})

		Convey("When a seat names an unknown manager", func() {
			bad := map[league.Seat]string{
				{Year: 2024, TeamNumber: 9}: "mallory",
			}
			_, err := league.New(managers, bad)

			Convey("Then construction fails", func() {
				So(errors.Is(err, league.ErrUnknownManager), ShouldBeTrue)
			})
		})

		Convey("When the manager list is empty", func() {
			_, err := league.New(nil, nil)

			Convey("Then construction fails", func() {
				So(errors.Is(err, league.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When a manager appears twice", func() {
			_, err := league.New([]string{"alice", "alice"}, nil)

			Convey("Then construction fails", func() {
				So(errors.Is(err, league.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
