// Package render writes the static dashboard pages from computed
// results.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/okian/dugout/internal/adapters/repository"
	"github.com/okian/dugout/internal/domain/h2h"
	"github.com/okian/dugout/internal/domain/league"
	"github.com/okian/dugout/pkg/metrics"
)

//go:embed templates/*
var templatesFS embed.FS

// Renderer writes dashboard pages to an output directory.
type Renderer struct {
	tmpl   *template.Template
	outDir string
}

// New creates a Renderer targeting outDir.
func New(outDir string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplates, err)
	}
	return &Renderer{tmpl: tmpl, outDir: outDir}, nil
}

// powerRow is the view model for one power ranking line.
type powerRow struct {
	Manager   string
	Team      int
	Total     float64
	Batting   float64
	Pitching  float64
	PowerRank int
	Rank      int
	Variation int
	Luck      float64
}

// dashboardView feeds the index page.
type dashboardView struct {
	Season int
	Week   int
	Rows   []powerRow
}

// trendRow is one manager's week-by-week power rank.
type trendRow struct {
	Manager string
	Team    int
	Cells   []string
}

// trendView feeds the season trend page.
type trendView struct {
	Season int
	Weeks  []int
	Rows   []trendRow
}

// h2hView feeds the head-to-head page.
type h2hView struct {
	Managers []string
	Matrix   map[string]map[string]h2h.Record
}

// eloRow is the view model for one rating line.
type eloRow struct {
	Manager string
	Team    int
	Rating  float64
}

// eloView feeds the ratings page.
type eloView struct {
	Season int
	Week   int
	Rows   []eloRow
}

// Site renders all pages from the store into the output directory.
func (r *Renderer) Site(ctx context.Context, store repository.Store, lg *league.Config, season int) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	week, err := store.LatestWeek(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoResults, err)
	}

	if err := r.renderDashboard(ctx, store, lg, season, week); err != nil {
		return err
	}
	if err := r.renderTrend(ctx, store, lg, season); err != nil {
		return err
	}
	if err := r.renderH2H(ctx, store, lg); err != nil {
		return err
	}
	if err := r.renderElo(ctx, store, lg, season); err != nil {
		return err
	}
	return r.writeStatic()
}

func (r *Renderer) renderDashboard(ctx context.Context, store repository.Store, lg *league.Config, season, week int) error {
	composite, err := store.Composite(ctx, week)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoResults, err)
	}

	luckByTeam := make(map[int]float64)
	if luck, err := store.Luck(ctx, week); err == nil {
		for _, l := range luck {
			luckByTeam[l.TeamNumber] = l.Luck
		}
	}

	view := dashboardView{Season: season, Week: week}
	for _, row := range composite {
		mgr, err := lg.Manager(season, row.TeamNumber)
		if err != nil {
			mgr = fmt.Sprintf("Team %d", row.TeamNumber)
		}
		view.Rows = append(view.Rows, powerRow{
			Manager:   mgr,
			Team:      row.TeamNumber,
			Total:     row.TotalScoreSum,
			Batting:   row.BattingScoreSum,
			Pitching:  row.PitchingScoreSum,
			PowerRank: row.StatsPowerRank,
			Rank:      row.LeagueRank,
			Variation: row.ScoreVariation,
			Luck:      luckByTeam[row.TeamNumber],
		})
	}
	return r.writePage("index.html", "dashboard.html.tmpl", view)
}

func (r *Renderer) renderTrend(ctx context.Context, store repository.Store, lg *league.Config, season int) error {
	trend, err := store.CompositeTrend(ctx)
	if err != nil || len(trend) == 0 {
		return nil
	}

	weeks := make([]int, 0, len(trend))
	for week := range trend {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	rankByTeam := make(map[int]map[int]int)
	for week, rows := range trend {
		for _, row := range rows {
			if rankByTeam[row.TeamNumber] == nil {
				rankByTeam[row.TeamNumber] = make(map[int]int)
			}
			rankByTeam[row.TeamNumber][week] = row.StatsPowerRank
		}
	}

	teams := make([]int, 0, len(rankByTeam))
	for team := range rankByTeam {
		teams = append(teams, team)
	}
	sort.Ints(teams)

	view := trendView{Season: season, Weeks: weeks}
	for _, team := range teams {
		mgr, err := lg.Manager(season, team)
		if err != nil {
			mgr = fmt.Sprintf("Team %d", team)
		}
		row := trendRow{Manager: mgr, Team: team}
		for _, week := range weeks {
			if rank, ok := rankByTeam[team][week]; ok {
				row.Cells = append(row.Cells, strconv.Itoa(rank))
			} else {
				row.Cells = append(row.Cells, "-")
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return r.writePage("trend.html", "trend.html.tmpl", view)
}

func (r *Renderer) renderH2H(ctx context.Context, store repository.Store, lg *league.Config) error {
	matrix, err := store.H2H(ctx)
	if err != nil {
		// H2H is optional on a plain weekly run.
		return nil
	}
	view := h2hView{Managers: lg.Managers(), Matrix: matrix}
	return r.writePage("h2h.html", "h2h.html.tmpl", view)
}

func (r *Renderer) renderElo(ctx context.Context, store repository.Store, lg *league.Config, season int) error {
	series, err := store.Elo(ctx)
	if err != nil {
		return nil
	}

	// The series is week-ascending, so the last row seen per team
	// carries its current rating.
	latest := make(map[int]eloRow)
	lastWeek := 0
	for _, e := range series {
		if e.Week > lastWeek {
			lastWeek = e.Week
		}
		mgr, err := lg.Manager(season, e.TeamNumber)
		if err != nil {
			mgr = fmt.Sprintf("Team %d", e.TeamNumber)
		}
		latest[e.TeamNumber] = eloRow{Manager: mgr, Team: e.TeamNumber, Rating: e.NewRating}
	}

	view := eloView{Season: season, Week: lastWeek}
	for _, row := range latest {
		view.Rows = append(view.Rows, row)
	}
	sort.Slice(view.Rows, func(i, j int) bool { return view.Rows[i].Rating > view.Rows[j].Rating })
	return r.writePage("elo.html", "elo.html.tmpl", view)
}

func (r *Renderer) writePage(name, tmplName string, view any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, tmplName, view); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTemplates, tmplName, err)
	}
	if err := os.WriteFile(filepath.Join(r.outDir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, name, err)
	}
	metrics.RecordPageRendered()
	return nil
}

func (r *Renderer) writeStatic() error {
	css, err := templatesFS.ReadFile("templates/style.css")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTemplates, err)
	}
	if err := os.WriteFile(filepath.Join(r.outDir, "style.css"), css, 0o644); err != nil {
		return fmt.Errorf("%w: style.css: %w", ErrWrite, err)
	}
	return nil
}
