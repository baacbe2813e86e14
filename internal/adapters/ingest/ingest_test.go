package ingest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ingest "github.com/okian/dugout/internal/adapters/ingest"
	"github.com/okian/dugout/internal/domain/category"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestSeasonStats(t *testing.T) {
	Convey("Given a season stats fixture", t, func() {
		dir := t.TempDir()
		loader := ingest.NewLoader(category.DefaultSet())

		writeFixture(t, dir, "stats.yaml", `year: 2024
weeks:
  - week: 1
    teams:
      - team: 2
        values: {HR: 12, "HR.1": 9, ERA: 3.41}
      - team: 1
        values: {HR: 8, HRA: 11, ERA: 4.05}
`)

		Convey("When loading", func() {
			stats, err := loader.SeasonStats(dir)

			Convey("Then legacy spellings collapse onto canonical names", func() {
				So(err, ShouldBeNil)
				lines := stats[1]
				So(len(lines), ShouldEqual, 2)

				// Sorted by team number regardless of file order.
				So(lines[0].TeamNumber, ShouldEqual, 1)
				So(lines[1].TeamNumber, ShouldEqual, 2)

				// "HR.1" is the legacy export spelling of HRA.
				So(lines[1].Values["HRA"], ShouldEqual, 9)
				So(lines[0].Values["HRA"], ShouldEqual, 11)
				So(lines[0].Year, ShouldEqual, 2024)
			})
		})

		Convey("When a value carries an unknown category name", func() {
			writeFixture(t, dir, "stats.yaml", `year: 2024
weeks:
  - week: 1
    teams:
      - team: 1
        values: {WAR: 3.2}
`)
			_, err := loader.SeasonStats(dir)

			Convey("Then loading fails rather than dropping the stat", func() {
				So(errors.Is(err, ingest.ErrBadFixture), ShouldBeTrue)
				So(errors.Is(err, category.ErrUnknownCategory), ShouldBeTrue)
			})
		})

		Convey("When the fixture file is missing", func() {
			_, err := loader.SeasonStats(t.TempDir())

			Convey("Then loading fails with a read error", func() {
				So(errors.Is(err, ingest.ErrReadFixture), ShouldBeTrue)
			})
		})
	})
}

func TestMatchupsAndStandings(t *testing.T) {
	Convey("Given matchup and standings fixtures", t, func() {
		dir := t.TempDir()
		loader := ingest.NewLoader(category.DefaultSet())

		writeFixture(t, dir, "matchups.yaml", `year: 2024
matchups:
  - week: 2
    team: 3
    opponent: 1
    wins: 7
    opponent_wins: 4
    ties: 1
  - week: 1
    team: 1
    opponent: 3
    wins: 6
    opponent_wins: 6
`)
		writeFixture(t, dir, "standings.yaml", `year: 2024
weeks:
  - week: 1
    ranks:
      - {team: 1, rank: 2}
      - {team: 3, rank: 1}
`)

		Convey("When loading matchups", func() {
			results, err := loader.Matchups(dir)

			Convey("Then results are ordered by week then team", func() {
				So(err, ShouldBeNil)
				So(len(results), ShouldEqual, 2)
				So(results[0].Week, ShouldEqual, 1)
				So(results[1].Week, ShouldEqual, 2)
				So(results[1].TeamNumber, ShouldEqual, 3)
				So(results[1].AdjustedScore(), ShouldEqual, 7.5)
			})
		})

		Convey("When loading standings", func() {
			standings, err := loader.Standings(dir)

			Convey("Then each week's ranks come back", func() {
				So(err, ShouldBeNil)
				So(len(standings[1]), ShouldEqual, 2)
				So(standings[1][1].TeamNumber, ShouldEqual, 3)
				So(standings[1][1].Rank, ShouldEqual, 1)
			})
		})

		Convey("When loading the schedule", func() {
			writeFixture(t, dir, "schedule.yaml", `year: 2024
entries:
  - {week: 1, team: 1, opponent: 3}
  - {week: 2, team: 3, opponent: 1}
`)
			entries, err := loader.Schedule(dir)

			Convey("Then every pairing carries the season year", func() {
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Year, ShouldEqual, 2024)
				So(entries[1].Week, ShouldEqual, 2)
				So(entries[1].OpponentNumber, ShouldEqual, 1)
			})
		})
	})
}

func TestLoadLeague(t *testing.T) {
	Convey("Given a league file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "league.yaml")

		writeFixture(t, dir, "league.yaml", `managers: [bob, alice]
seats:
  - {year: 2024, team: 1, manager: alice}
  - {year: 2024, team: 2, manager: bob}
`)

		Convey("When loading it", func() {
			lg, err := ingest.LoadLeague(path)

			Convey("Then membership and seats resolve", func() {
				So(err, ShouldBeNil)
				So(lg.Managers(), ShouldResemble, []string{"alice", "bob"})

				mgr, err := lg.Manager(2024, 2)
				So(err, ShouldBeNil)
				So(mgr, ShouldEqual, "bob")
			})
		})

		Convey("When a seat names an unknown manager", func() {
			writeFixture(t, dir, "league.yaml", `managers: [alice]
seats:
  - {year: 2024, team: 1, manager: mallory}
`)
			_, err := ingest.LoadLeague(path)

			Convey("Then loading fails", func() {
				So(errors.Is(err, ingest.ErrBadFixture), ShouldBeTrue)
			})
		})
	})
}
