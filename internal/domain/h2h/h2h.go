// Package h2h accumulates manager-vs-manager win/loss/tie records
// across seasons.
package h2h

import (
	"context"
	"fmt"

	"github.com/okian/dugout/internal/domain/dedupe"
)

// Matchup is one played result between two managers. Winner names the
// winning manager, or is empty for a tie. Source data records results in
// either direction ("A beat B" and "B lost to A" both appear), so the
// aggregator canonicalizes the pair before counting.
type Matchup struct {
	Season   int
	Week     int
	ManagerA string
	ManagerB string
	Winner   string
}

// ID is the unique key for a matchup: one result per season, week and
// unordered pair.
func (m Matchup) ID() string {
	a, b := orderPair(m.ManagerA, m.ManagerB)
	return fmt.Sprintf("%d#%d#%s#%s", m.Season, m.Week, a, b)
}

// Record is a cumulative W/L/T line from one manager's point of view.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// pairKey identifies an unordered manager pair; First sorts before Second.
type pairKey struct {
	first  string
	second string
}

// pairRecord stores one unordered pair's history exactly once. Both
// viewing directions project from the same counters, which is what makes
// matrix[A][B].wins == matrix[B][A].losses structural rather than a
// convention the writer has to maintain.
type pairRecord struct {
	firstWins  int
	secondWins int
	ties       int
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithDeduper injects a custom idempotency tracker.
func WithDeduper(d dedupe.Deduper) Option {
	return func(a *Aggregator) {
		if d != nil {
			a.deduper = d
		}
	}
}

// Aggregator folds matchup results into pair records. It is a plain
// accumulator: callers feeding it from multiple goroutines must
// serialize, as with the rest of the pipeline.
type Aggregator struct {
	deduper dedupe.Deduper
	pairs   map[pairKey]*pairRecord
	counted int
	skipped int
}

// New creates an empty aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		pairs: make(map[pairKey]*pairRecord),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.deduper == nil {
		a.deduper = dedupe.NewInMemoryDeduper()
	}
	return a
}

// Ingest counts one matchup result. Re-ingesting a matchup already
// counted returns ErrDuplicateMatchup and leaves every counter
// untouched; callers treat that as a skip, not a failure. Malformed
// input (self-pair, unknown winner, blank manager) returns
// ErrInvalidMatchup before anything is recorded.
func (a *Aggregator) Ingest(ctx context.Context, m Matchup) error {
	if m.ManagerA == "" || m.ManagerB == "" {
		return fmt.Errorf("%w: blank manager name", ErrInvalidMatchup)
	}
	if m.ManagerA == m.ManagerB {
		return fmt.Errorf("%w: %q paired with itself", ErrSelfPair, m.ManagerA)
	}
	if m.Winner != "" && m.Winner != m.ManagerA && m.Winner != m.ManagerB {
		return fmt.Errorf("%w: winner %q is not a participant", ErrInvalidMatchup, m.Winner)
	}

	if a.deduper.SeenAndRecord(ctx, m.ID()) {
		a.skipped++
		return fmt.Errorf("%w: %s", ErrDuplicateMatchup, m.ID())
	}

	first, second := orderPair(m.ManagerA, m.ManagerB)
	key := pairKey{first: first, second: second}
	rec, ok := a.pairs[key]
	if !ok {
		rec = &pairRecord{}
		a.pairs[key] = rec
	}

	switch m.Winner {
	case "":
		rec.ties++
	case first:
		rec.firstWins++
	default:
		rec.secondWins++
	}
	a.counted++
	return nil
}

// Remove backs out a previously counted matchup so a corrected result
// can be replayed. The matchup itself must have been counted, not just
// some matchup between the same pair: removing a season+week that was
// never ingested returns ErrUnknownMatchup and leaves every counter
// untouched, so records can never go negative.
func (a *Aggregator) Remove(ctx context.Context, m Matchup) error {
	first, second := orderPair(m.ManagerA, m.ManagerB)
	key := pairKey{first: first, second: second}
	rec, ok := a.pairs[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMatchup, m.ID())
	}
	switch m.Winner {
	case "", first, second:
	default:
		return fmt.Errorf("%w: winner %q is not a participant", ErrInvalidMatchup, m.Winner)
	}

	if !a.deduper.Unrecord(ctx, m.ID()) {
		return fmt.Errorf("%w: %s", ErrUnknownMatchup, m.ID())
	}

	switch m.Winner {
	case "":
		rec.ties--
	case first:
		rec.firstWins--
	default:
		rec.secondWins--
	}
	a.counted--
	return nil
}

// Record projects the cumulative line for viewer against opponent.
// Unplayed pairs return a zero record.
func (a *Aggregator) Record(viewer, opponent string) (Record, error) {
	if viewer == opponent {
		return Record{}, fmt.Errorf("%w: %q", ErrSelfPair, viewer)
	}
	first, second := orderPair(viewer, opponent)
	rec, ok := a.pairs[pairKey{first: first, second: second}]
	if !ok {
		return Record{}, nil
	}
	if viewer == first {
		return Record{Wins: rec.firstWins, Losses: rec.secondWins, Ties: rec.ties}, nil
	}
	return Record{Wins: rec.secondWins, Losses: rec.firstWins, Ties: rec.ties}, nil
}

// Matrix projects the full pairwise grid for the given managers. The
// diagonal is zero records. Cells for both directions of a pair are
// projections of the same underlying counters.
func (a *Aggregator) Matrix(managers []string) map[string]map[string]Record {
	out := make(map[string]map[string]Record, len(managers))
	for _, viewer := range managers {
		row := make(map[string]Record, len(managers))
		for _, opponent := range managers {
			if viewer == opponent {
				row[opponent] = Record{}
				continue
			}
			rec, _ := a.Record(viewer, opponent)
			row[opponent] = rec
		}
		out[viewer] = row
	}
	return out
}

// Counted returns the number of matchups accumulated so far.
func (a *Aggregator) Counted() int {
	return a.counted
}

// Skipped returns the number of duplicate matchups rejected so far.
func (a *Aggregator) Skipped() int {
	return a.skipped
}

// orderPair returns the pair in canonical (lexicographic) order.
func orderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}
