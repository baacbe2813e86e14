package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/dugout/internal/domain/h2h"
	"github.com/okian/dugout/internal/domain/model"
)

// MemStore is the in-memory Store used for serving and rendering. Each
// pipeline run recomputes everything from the immutable raw input, so
// the store only ever holds one run's output; the mutex exists for the
// serve-mode readers, not for concurrent writers.
type MemStore struct {
	mu        sync.RWMutex
	composite map[int][]model.CompositeScore
	luck      map[int][]model.LuckLine
	elo       []model.EloRating
	matrix    map[string]map[string]h2h.Record
}

// NewMemStore creates an empty in-memory results store.
func NewMemStore() *MemStore {
	return &MemStore{
		composite: make(map[int][]model.CompositeScore),
		luck:      make(map[int][]model.LuckLine),
	}
}

// PutComposite overwrites the composite table for a week.
func (s *MemStore) PutComposite(_ context.Context, week int, rows []model.CompositeScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composite[week] = copyRows(rows)
	return nil
}

// Composite returns the composite table for a week.
func (s *MemStore) Composite(_ context.Context, week int) ([]model.CompositeScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.composite[week]
	if !ok {
		return nil, fmt.Errorf("%w: week %d", ErrNotFound, week)
	}
	return copyRows(rows), nil
}

// CompositeTrend returns every computed week keyed by week number.
func (s *MemStore) CompositeTrend(_ context.Context) (map[int][]model.CompositeScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]model.CompositeScore, len(s.composite))
	for week, rows := range s.composite {
		out[week] = copyRows(rows)
	}
	return out, nil
}

// LatestWeek returns the most recent week with composite results.
func (s *MemStore) LatestWeek(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.composite) == 0 {
		return 0, ErrEmpty
	}
	latest := 0
	for week := range s.composite {
		if week > latest {
			latest = week
		}
	}
	return latest, nil
}

// PutLuck overwrites the luck table for a week.
func (s *MemStore) PutLuck(_ context.Context, week int, rows []model.LuckLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.luck[week] = copyRows(rows)
	return nil
}

// Luck returns the luck table for a week.
func (s *MemStore) Luck(_ context.Context, week int) ([]model.LuckLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.luck[week]
	if !ok {
		return nil, fmt.Errorf("%w: week %d", ErrNotFound, week)
	}
	return copyRows(rows), nil
}

// LuckTrend returns every computed luck week keyed by week number.
func (s *MemStore) LuckTrend(_ context.Context) (map[int][]model.LuckLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]model.LuckLine, len(s.luck))
	for week, rows := range s.luck {
		out[week] = copyRows(rows)
	}
	return out, nil
}

// PutElo replaces the full season rating series.
func (s *MemStore) PutElo(_ context.Context, rows []model.EloRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elo = copyRows(rows)
	return nil
}

// Elo returns the season rating series.
func (s *MemStore) Elo(_ context.Context) ([]model.EloRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.elo == nil {
		return nil, ErrEmpty
	}
	return copyRows(s.elo), nil
}

// PutH2H replaces the manager-vs-manager matrix.
func (s *MemStore) PutH2H(_ context.Context, matrix map[string]map[string]h2h.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matrix = copyMatrix(matrix)
	return nil
}

// H2H returns the manager-vs-manager matrix.
func (s *MemStore) H2H(_ context.Context) (map[string]map[string]h2h.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.matrix == nil {
		return nil, ErrEmpty
	}
	return copyMatrix(s.matrix), nil
}

func copyRows[T any](rows []T) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	return out
}

func copyMatrix(in map[string]map[string]h2h.Record) map[string]map[string]h2h.Record {
	out := make(map[string]map[string]h2h.Record, len(in))
	for viewer, row := range in {
		c := make(map[string]h2h.Record, len(row))
		for opp, rec := range row {
			c[opp] = rec
		}
		out[viewer] = c
	}
	return out
}
