package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/okian/dugout/internal/adapters/http/api"
	repository "github.com/okian/dugout/internal/adapters/repository"
	"github.com/okian/dugout/internal/domain/h2h"
	"github.com/okian/dugout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func seededServer(ctx context.Context) *httptest.Server {
	store := repository.NewMemStore()
	_ = store.PutComposite(ctx, 2, []model.CompositeScore{
		{TeamNumber: 1, Week: 2, TotalScoreSum: 4300, StatsPowerRank: 1, LeagueRank: 3, ScoreVariation: -2},
	})
	_ = store.PutComposite(ctx, 5, []model.CompositeScore{
		{TeamNumber: 1, Week: 5, TotalScoreSum: 4100, StatsPowerRank: 1, LeagueRank: 1, ScoreVariation: 0},
	})
	_ = store.PutLuck(ctx, 5, []model.LuckLine{
		{TeamNumber: 1, Week: 5, ExpectedWins: 7, ActualWins: 8, Luck: 1},
	})
	_ = store.PutElo(ctx, []model.EloRating{
		{TeamNumber: 1, Week: 5, Rating: 1000, NewRating: 1025},
	})
	_ = store.PutH2H(ctx, map[string]map[string]h2h.Record{
		"alice": {"bob": {Wins: 2}},
		"bob":   {"alice": {Losses: 2}},
	})

	mux := http.NewServeMux()
	api.NewServer(store).Register(mux)
	return httptest.NewServer(mux)
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func TestPowerRankingsEndpoint(t *testing.T) {
	Convey("Given a server over a seeded store", t, func() {
		srv := seededServer(context.Background())
		defer srv.Close()

		Convey("When requesting without a week", func() {
			var body struct {
				Week int `json:"week"`
				Rows []struct {
					TotalScoreSum float64
				} `json:"rows"`
			}
			status := getJSON(t, srv.URL+"/api/power-rankings", &body)

			Convey("Then the latest computed week comes back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Week, ShouldEqual, 5)
				So(len(body.Rows), ShouldEqual, 1)
			})
		})

		Convey("When requesting a specific week", func() {
			var body struct {
				Week int `json:"week"`
			}
			status := getJSON(t, srv.URL+"/api/power-rankings?week=2", &body)

			Convey("Then that week comes back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Week, ShouldEqual, 2)
			})
		})

		Convey("When requesting a week that was never computed", func() {
			status := getJSON(t, srv.URL+"/api/power-rankings?week=9", nil)

			Convey("Then the response is 404", func() {
				So(status, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the week parameter is malformed", func() {
			status := getJSON(t, srv.URL+"/api/power-rankings?week=first", nil)

			Convey("Then the response is 400", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using a non-GET method", func() {
			resp, err := http.Post(srv.URL+"/api/power-rankings", "application/json", nil)

			Convey("Then the response is 405", func() {
				So(err, ShouldBeNil)
				defer resp.Body.Close()
				So(resp.StatusCode, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestAnalysisEndpoints(t *testing.T) {
	Convey("Given a server over a seeded store", t, func() {
		srv := seededServer(context.Background())
		defer srv.Close()

		Convey("When requesting luck", func() {
			var body struct {
				Week int `json:"week"`
				Rows []struct {
					Luck float64
				} `json:"rows"`
			}
			status := getJSON(t, srv.URL+"/api/luck", &body)

			Convey("Then the latest week's lines come back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Week, ShouldEqual, 5)
				So(len(body.Rows), ShouldEqual, 1)
			})
		})

		Convey("When requesting the head-to-head matrix", func() {
			var body struct {
				Matrix map[string]map[string]h2h.Record `json:"matrix"`
			}
			status := getJSON(t, srv.URL+"/api/h2h", &body)

			Convey("Then the full matrix comes back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Matrix["alice"]["bob"].Wins, ShouldEqual, 2)
			})
		})

		Convey("When narrowing the matrix to one manager", func() {
			var body struct {
				Matrix map[string]map[string]h2h.Record `json:"matrix"`
			}
			status := getJSON(t, srv.URL+"/api/h2h?manager=bob", &body)

			Convey("Then only that row comes back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(len(body.Matrix), ShouldEqual, 1)
				So(body.Matrix["bob"]["alice"].Losses, ShouldEqual, 2)
			})
		})

		Convey("When the manager is unknown", func() {
			status := getJSON(t, srv.URL+"/api/h2h?manager=mallory", nil)

			Convey("Then the response is 404", func() {
				So(status, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When requesting the elo series", func() {
			var body struct {
				Ratings []struct {
					NewRating float64
				} `json:"ratings"`
			}
			status := getJSON(t, srv.URL+"/api/elo", &body)

			Convey("Then the series comes back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(len(body.Ratings), ShouldEqual, 1)
				So(body.Ratings[0].NewRating, ShouldEqual, 1025)
			})
		})

		Convey("When checking health", func() {
			var body struct {
				Status string `json:"status"`
			}
			status := getJSON(t, srv.URL+"/healthz", &body)

			Convey("Then the service reports ok", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Status, ShouldEqual, "ok")
			})
		})

		Convey("When scraping metrics", func() {
			resp, err := http.Get(srv.URL + "/metrics")

			Convey("Then Prometheus output is served", func() {
				So(err, ShouldBeNil)
				defer resp.Body.Close()
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestEmptyStore(t *testing.T) {
	Convey("Given a server over an empty store", t, func() {
		mux := http.NewServeMux()
		api.NewServer(repository.NewMemStore()).Register(mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When requesting any results endpoint", func() {
			Convey("Then power rankings return 404", func() {
				So(getJSON(t, srv.URL+"/api/power-rankings", nil), ShouldEqual, http.StatusNotFound)
			})
			Convey("Then elo returns 404", func() {
				So(getJSON(t, srv.URL+"/api/elo", nil), ShouldEqual, http.StatusNotFound)
			})
			Convey("Then h2h returns 404", func() {
				So(getJSON(t, srv.URL+"/api/h2h", nil), ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
