// Package service wires the season pipeline together: it loads fixture
// data, runs the scoring and analysis stages, and writes the results to
// the configured stores.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/dugout/internal/adapters/ingest"
	"github.com/okian/dugout/internal/adapters/repository"
	"github.com/okian/dugout/internal/domain/allplay"
	"github.com/okian/dugout/internal/domain/category"
	"github.com/okian/dugout/internal/domain/composite"
	"github.com/okian/dugout/internal/domain/elo"
	"github.com/okian/dugout/internal/domain/h2h"
	"github.com/okian/dugout/internal/domain/league"
	"github.com/okian/dugout/internal/domain/model"
	"github.com/okian/dugout/internal/domain/normalize"
	"github.com/okian/dugout/internal/domain/variation"
	"github.com/okian/dugout/pkg/logger"
	"github.com/okian/dugout/pkg/metrics"
)

// Service runs the analytics pipeline over a season of fixture data.
type Service struct {
	set    *category.Set
	lg     *league.Config
	loader *ingest.Loader

	store     repository.Store
	exporters []repository.Writer

	season            int
	precision         int
	matchupCategories int
	eloKFactor        float64
	eloInitialRating  float64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(lg logger.Logger) Option {
	return func(s *Service) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithStore sets the primary result store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithExporter adds a secondary writer that receives every result the
// primary store does. Used for the DynamoDB export.
func WithExporter(w repository.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.exporters = append(s.exporters, w)
		}
	}
}

// WithSeason sets the season year the pipeline operates on.
func WithSeason(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.season = year
		}
	}
}

// WithPrecision sets the decimal precision of normalized scores.
func WithPrecision(p int) Option {
	return func(s *Service) {
		if p >= 0 {
			s.precision = p
		}
	}
}

// WithMatchupCategories sets how many categories a weekly matchup is
// played across.
func WithMatchupCategories(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.matchupCategories = n
		}
	}
}

// WithEloParams sets the K-factor and initial rating for Elo analysis.
func WithEloParams(kFactor, initial float64) Option {
	return func(s *Service) {
		if kFactor > 0 {
			s.eloKFactor = kFactor
		}
		if initial > 0 {
			s.eloInitialRating = initial
		}
	}
}

// New creates a pipeline service for the given category set and league.
func New(set *category.Set, lg *league.Config, opts ...Option) *Service {
	s := &Service{
		set:               set,
		lg:                lg,
		loader:            ingest.NewLoader(set),
		store:             repository.NewMemStore(),
		season:            time.Now().Year(),
		precision:         2,
		matchupCategories: 12,
		eloKFactor:        50,
		eloInitialRating:  1000,
		logger:            logger.Get().Named("pipeline"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Store exposes the primary result store for the HTTP API and renderer.
func (s *Service) Store() repository.Store {
	return s.store
}

// Season returns the season year the pipeline operates on.
func (s *Service) Season() int {
	return s.season
}

// RunSeason executes the weekly scoring stages for every week found in
// the season fixture directory: normalization, composite power ranking,
// rank variation against the league standings, and all-play luck.
func (s *Service) RunSeason(ctx context.Context, seasonDir string) error {
	runID := uuid.New().String()
	start := time.Now()
	run := s.logger.Named("run")

	run.Info(ctx, "season run started",
		logger.String("run_id", runID),
		logger.Int("season", s.season),
		logger.String("dir", seasonDir))

	stats, err := s.loader.SeasonStats(seasonDir)
	if err != nil {
		metrics.RecordPipelineError()
		return fmt.Errorf("loading season stats: %w", err)
	}
	standings, err := s.loader.Standings(seasonDir)
	if err != nil {
		metrics.RecordPipelineError()
		return fmt.Errorf("loading standings: %w", err)
	}
	results, err := s.loader.Matchups(seasonDir)
	if err != nil {
		metrics.RecordPipelineError()
		return fmt.Errorf("loading matchups: %w", err)
	}

	normalizer := normalize.New(s.set, normalize.WithPrecision(s.precision))
	scorer := composite.New(s.set)
	analyzer := allplay.New(s.set, allplay.WithMatchupCategories(s.matchupCategories))

	byWeek := groupByWeek(results)

	weeks := make([]int, 0, len(stats))
	for week := range stats {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	for _, week := range weeks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runWeek(ctx, run, runID, week, stats[week], standings[week], byWeek[week], normalizer, scorer, analyzer); err != nil {
			metrics.RecordPipelineError()
			return fmt.Errorf("week %d: %w", week, err)
		}
	}

	elapsed := time.Since(start)
	metrics.RecordPipelineRun(elapsed)
	run.Info(ctx, "season run finished",
		logger.String("run_id", runID),
		logger.Int("weeks", len(weeks)),
		logger.Duration("elapsed", elapsed))

	return nil
}

func (s *Service) runWeek(
	ctx context.Context,
	run logger.Logger,
	runID string,
	week int,
	lines []model.StatLine,
	standings []model.Standing,
	results []model.MatchupResult,
	normalizer *normalize.Normalizer,
	scorer *composite.Scorer,
	analyzer *allplay.Analyzer,
) error {
	metrics.RecordStatLinesIngested(len(lines))

	stageStart := time.Now()
	scores, err := normalizer.WeekScores(lines)
	if err != nil {
		return fmt.Errorf("normalizing: %w", err)
	}
	metrics.RecordWeekNormalized(len(scores))
	metrics.RecordStageDuration("normalize", time.Since(stageStart))

	stageStart = time.Now()
	rows, err := scorer.Totals(scores)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	metrics.RecordStageDuration("composite", time.Since(stageStart))

	if len(standings) > 0 {
		rows, err = variation.Apply(rows, standings)
		if err != nil {
			return fmt.Errorf("rank variation: %w", err)
		}
	}

	if err := s.putComposite(ctx, week, rows); err != nil {
		return err
	}

	if len(results) > 0 {
		stageStart = time.Now()
		luck, err := analyzer.Luck(lines, results)
		if err != nil {
			return fmt.Errorf("luck analysis: %w", err)
		}
		metrics.RecordStageDuration("allplay", time.Since(stageStart))
		if err := s.putLuck(ctx, week, luck); err != nil {
			return err
		}
	}

	run.Debug(ctx, "week scored",
		logger.String("run_id", runID),
		logger.Int("week", week),
		logger.Int("teams", len(rows)))

	return nil
}

// RunH2H folds every season's matchup results under dataDir into the
// cumulative head-to-head matrix. Feeding the same seasons again leaves
// the matrix unchanged: each pairing is counted once per week.
func (s *Service) RunH2H(ctx context.Context, dataDir string, years []int) (map[string]map[string]h2h.Record, error) {
	agg := h2h.New()

	for _, year := range years {
		results, err := s.loader.Matchups(seasonPath(dataDir, year))
		if err != nil {
			metrics.RecordPipelineError()
			return nil, fmt.Errorf("season %d: %w", year, err)
		}
		if err := s.ingestH2H(ctx, agg, year, results); err != nil {
			metrics.RecordPipelineError()
			return nil, fmt.Errorf("season %d: %w", year, err)
		}
	}

	matrix := agg.Matrix(s.lg.Managers())
	if err := s.putH2H(ctx, matrix); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "head-to-head matrix updated",
		logger.Int("seasons", len(years)),
		logger.Int("counted", agg.Counted()),
		logger.Int("skipped", agg.Skipped()))

	return matrix, nil
}

// ingestH2H converts team-perspective matchup rows into manager pairs.
// Fixtures record each pairing from both sides; the aggregator's
// deduplication collapses the mirrored rows into a single result.
func (s *Service) ingestH2H(ctx context.Context, agg *h2h.Aggregator, year int, results []model.MatchupResult) error {
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return err
		}

		managerA, err := s.lg.Manager(year, r.TeamNumber)
		if err != nil {
			return fmt.Errorf("week %d team %d: %w", r.Week, r.TeamNumber, err)
		}
		managerB, err := s.lg.Manager(year, r.OpponentNumber)
		if err != nil {
			return fmt.Errorf("week %d team %d: %w", r.Week, r.OpponentNumber, err)
		}

		m := h2h.Matchup{
			Season:   year,
			Week:     r.Week,
			ManagerA: managerA,
			ManagerB: managerB,
			Winner:   matchupWinner(r, managerA, managerB),
		}

		switch err := agg.Ingest(ctx, m); {
		case err == nil:
			metrics.RecordMatchupCounted()
		case errors.Is(err, h2h.ErrDuplicateMatchup):
			metrics.RecordMatchupDuplicate()
			s.logger.Debug(ctx, "duplicate matchup skipped",
				logger.Int("season", year),
				logger.Int("week", r.Week),
				logger.String("pair", m.ID()))
		default:
			return fmt.Errorf("week %d: %w", r.Week, err)
		}
	}

	metrics.RecordMatchupsIngested(len(results))
	return nil
}

// RunElo computes the Elo rating series for one season's matchups.
func (s *Service) RunElo(ctx context.Context, seasonDir string) ([]model.EloRating, error) {
	results, err := s.loader.Matchups(seasonDir)
	if err != nil {
		metrics.RecordPipelineError()
		return nil, fmt.Errorf("loading matchups: %w", err)
	}

	rater := elo.New(
		elo.WithKFactor(s.eloKFactor),
		elo.WithInitialRating(s.eloInitialRating),
		elo.WithCategoriesPerMatchup(s.matchupCategories),
	)

	start := time.Now()
	series, err := rater.Season(results)
	if err != nil {
		metrics.RecordPipelineError()
		return nil, fmt.Errorf("rating season: %w", err)
	}
	metrics.RecordStageDuration("elo", time.Since(start))

	if err := s.putElo(ctx, series); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "elo ratings computed",
		logger.Int("results", len(results)),
		logger.Int("ratings", len(series)))

	return series, nil
}

func (s *Service) putComposite(ctx context.Context, week int, rows []model.CompositeScore) error {
	if err := s.store.PutComposite(ctx, week, rows); err != nil {
		return fmt.Errorf("storing composite scores: %w", err)
	}
	for _, w := range s.exporters {
		if err := w.PutComposite(ctx, week, rows); err != nil {
			return fmt.Errorf("exporting composite scores: %w", err)
		}
	}
	return nil
}

func (s *Service) putLuck(ctx context.Context, week int, rows []model.LuckLine) error {
	if err := s.store.PutLuck(ctx, week, rows); err != nil {
		return fmt.Errorf("storing luck lines: %w", err)
	}
	for _, w := range s.exporters {
		if err := w.PutLuck(ctx, week, rows); err != nil {
			return fmt.Errorf("exporting luck lines: %w", err)
		}
	}
	return nil
}

func (s *Service) putElo(ctx context.Context, series []model.EloRating) error {
	if err := s.store.PutElo(ctx, series); err != nil {
		return fmt.Errorf("storing elo ratings: %w", err)
	}
	for _, w := range s.exporters {
		if err := w.PutElo(ctx, series); err != nil {
			return fmt.Errorf("exporting elo ratings: %w", err)
		}
	}
	return nil
}

func (s *Service) putH2H(ctx context.Context, matrix map[string]map[string]h2h.Record) error {
	if err := s.store.PutH2H(ctx, matrix); err != nil {
		return fmt.Errorf("storing head-to-head matrix: %w", err)
	}
	for _, w := range s.exporters {
		if err := w.PutH2H(ctx, matrix); err != nil {
			return fmt.Errorf("exporting head-to-head matrix: %w", err)
		}
	}
	return nil
}

// matchupWinner resolves the winning manager from the team-perspective
// scores, or empty string for a tie.
func matchupWinner(r model.MatchupResult, managerA, managerB string) string {
	switch {
	case r.AdjustedScore() > r.OpponentAdjustedScore():
		return managerA
	case r.AdjustedScore() < r.OpponentAdjustedScore():
		return managerB
	default:
		return ""
	}
}

// seasonPath maps a season year to its fixture directory.
func seasonPath(dataDir string, year int) string {
	return filepath.Join(dataDir, strconv.Itoa(year))
}

func groupByWeek(results []model.MatchupResult) map[int][]model.MatchupResult {
	out := make(map[int][]model.MatchupResult)
	for _, r := range results {
		out[r.Week] = append(out[r.Week], r)
	}
	return out
}
