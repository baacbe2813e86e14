package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/okian/dugout/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func writeLeagueFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "league.yaml")
	doc := `managers: [alice, bob]
seats:
  - {year: 2024, team: 1, manager: alice}
  - {year: 2024, team: 2, manager: bob}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()

	Convey("Given a configured data dir and league file", t, func() {
		dir := t.TempDir()
		t.Setenv("DUGOUT_CONFIG", "")
		t.Setenv("DUGOUT_DATA_DIR", dir)
		t.Setenv("DUGOUT_LEAGUE_FILE", writeLeagueFile(t, dir))
		t.Setenv("DUGOUT_SEASON", "2024")

		Convey("When bootstrapping without overrides", func() {
			e, err := bootstrap(ctx)

			Convey("Then the service carries the configured season", func() {
				So(err, ShouldBeNil)
				So(e.cfg.Season, ShouldEqual, 2024)
				So(e.svc.Season(), ShouldEqual, 2024)
				So(e.seasonDir(), ShouldEqual, filepath.Join(dir, "2024"))
			})
		})

		Convey("When a flag overrides the season", func() {
			e, err := bootstrap(ctx, func(c *config.Config) { c.Season = 2023 })

			Convey("Then the service and the fixture dir agree on the override", func() {
				So(err, ShouldBeNil)
				So(e.cfg.Season, ShouldEqual, 2023)
				So(e.svc.Season(), ShouldEqual, 2023)
				So(e.seasonDir(), ShouldEqual, filepath.Join(dir, strconv.Itoa(2023)))
			})
		})
	})
}
