// Package repository defines the results store interface and errors.
package repository

import (
	"context"

	"github.com/okian/dugout/internal/domain/h2h"
	"github.com/okian/dugout/internal/domain/model"
)

// Writer is the write side of the results store. Export targets
// (DynamoDB) implement just this; the in-memory store implements all of
// Store.
type Writer interface {
	// PutComposite overwrites the composite table for a week and appends
	// it to the season trend.
	PutComposite(ctx context.Context, week int, rows []model.CompositeScore) error

	// PutLuck overwrites the luck table for a week.
	PutLuck(ctx context.Context, week int, rows []model.LuckLine) error

	// PutElo replaces the full season rating series.
	PutElo(ctx context.Context, rows []model.EloRating) error

	// PutH2H replaces the manager-vs-manager matrix.
	PutH2H(ctx context.Context, matrix map[string]map[string]h2h.Record) error
}

// Store provides read/write access to computed results.
type Store interface {
	Writer

	// Composite returns the composite table for a week.
	// Returns ErrNotFound if the week was never computed.
	Composite(ctx context.Context, week int) ([]model.CompositeScore, error)

	// CompositeTrend returns every computed week keyed by week number.
	CompositeTrend(ctx context.Context) (map[int][]model.CompositeScore, error)

	// LatestWeek returns the most recent week with composite results.
	// Returns ErrEmpty when nothing has been computed yet.
	LatestWeek(ctx context.Context) (int, error)

	// Luck returns the luck table for a week.
	Luck(ctx context.Context, week int) ([]model.LuckLine, error)

	// LuckTrend returns every computed luck week keyed by week number.
	LuckTrend(ctx context.Context) (map[int][]model.LuckLine, error)

	// Elo returns the season rating series.
	Elo(ctx context.Context) ([]model.EloRating, error)

	// H2H returns the manager-vs-manager matrix.
	H2H(ctx context.Context) (map[string]map[string]h2h.Record, error)
}
