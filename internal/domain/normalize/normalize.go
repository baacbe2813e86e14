// Package normalize converts raw category values into comparable 0-100
// scores using the league-wide min and max for each category-week.
package normalize

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/dugout/internal/domain/category"
	"github.com/okian/dugout/internal/domain/model"
)

// Default normalization constants.
const (
	maxScore         = 100
	defaultPrecision = 2
)

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithPrecision sets the number of decimal places scores are rounded to.
// Downstream ranking uses the rounded value, so the precision fixes what
// counts as a tie.
func WithPrecision(digits int) Option {
	return func(n *Normalizer) {
		if digits >= 0 {
			n.precision = digits
		}
	}
}

// Normalizer scores stat lines against a category set. It carries no
// state across calls; every invocation recomputes from its inputs.
type Normalizer struct {
	set       *category.Set
	precision int
}

// New creates a Normalizer for the given category set.
func New(set *category.Set, opts ...Option) *Normalizer {
	n := &Normalizer{
		set:       set,
		precision: defaultPrecision,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WeekScores normalizes every category for one week's stat lines.
//
// For each category the league min and max define the scale: the worst
// team scores 0.00 and the best 100.00, with direction deciding which
// end is which. When every team posted the identical value there is no
// spread to scale, and all teams receive full credit rather than a
// divide-by-zero artifact.
//
// A stat line missing any category fails the whole week with
// ErrIncompleteData; silently scoring a missing value as zero would
// corrupt the composite totals built on top of these scores.
func (n *Normalizer) WeekScores(lines []model.StatLine) ([]model.NormalizedScore, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no stat lines", ErrIncompleteData)
	}

	week := lines[0].Week
	for _, ln := range lines {
		if ln.Week != week {
			return nil, fmt.Errorf("%w: stat line for team %d is week %d, want %d", ErrMixedWeeks, ln.TeamNumber, ln.Week, week)
		}
	}

	// Teams in ascending number order for deterministic output.
	ordered := make([]model.StatLine, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].TeamNumber < ordered[j].TeamNumber })

	out := make([]model.NormalizedScore, 0, len(ordered)*n.set.Len())
	for _, def := range n.set.Definitions() {
		scores, err := n.categoryScores(def, week, ordered)
		if err != nil {
			return nil, err
		}
		out = append(out, scores...)
	}
	return out, nil
}

// categoryScores normalizes a single category across all teams in a week.
func (n *Normalizer) categoryScores(def category.Definition, week int, lines []model.StatLine) ([]model.NormalizedScore, error) {
	values := make([]float64, len(lines))
	for i, ln := range lines {
		v, ok := ln.Values[def.Name]
		if !ok {
			return nil, fmt.Errorf("%w: team %d week %d is missing %q", ErrIncompleteData, ln.TeamNumber, week, def.Name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: team %d week %d has non-finite %q", ErrIncompleteData, ln.TeamNumber, week, def.Name)
		}
		values[i] = v
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	out := make([]model.NormalizedScore, len(lines))
	for i, ln := range lines {
		var score float64
		if minV == maxV {
			// Every team tied; full credit for all, no division.
			score = maxScore
		} else {
			score = (values[i] - minV) / (maxV - minV) * maxScore
			if def.Direction == category.LowerIsBetter {
				score = maxScore - score
			}
		}
		out[i] = model.NormalizedScore{
			TeamNumber: ln.TeamNumber,
			Week:       week,
			Category:   def.Name,
			Score:      n.round(score),
		}
	}
	return out, nil
}

// round truncates a score to the configured precision. Rounded scores
// are what gets stored, displayed, and summed, so repeat runs over the
// same input always reproduce the same totals.
func (n *Normalizer) round(v float64) float64 {
	scale := math.Pow(10, float64(n.precision))
	return math.Round(v*scale) / scale
}
