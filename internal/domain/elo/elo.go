// Package elo maintains week-over-week team ratings from matchup
// results.
package elo

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/dugout/internal/domain/model"
)

// Rating constants. The exponent base is deliberately steeper than the
// chess-standard 10: category matchups are far less noisy than single
// games, so rating gaps should translate into stronger expectations.
const (
	defaultInitialRating = 1000
	defaultKFactor       = 50
	defaultCategories    = 12
	expBase              = 25
	ratingScale          = 400
)

// Option applies a configuration option to the Rater.
type Option func(*Rater)

// WithKFactor sets how hard a single week moves a rating.
func WithKFactor(k float64) Option {
	return func(r *Rater) {
		if k > 0 {
			r.kFactor = k
		}
	}
}

// WithInitialRating sets the rating every team starts the season with.
func WithInitialRating(rating float64) Option {
	return func(r *Rater) {
		if rating > 0 {
			r.initial = rating
		}
	}
}

// WithCategoriesPerMatchup sets the number of scored categories decided
// in one matchup, which bounds the weekly score difference.
func WithCategoriesPerMatchup(n int) Option {
	return func(r *Rater) {
		if n > 0 {
			r.categories = n
		}
	}
}

// Rater replays a season of matchup results into a rating time series.
type Rater struct {
	kFactor    float64
	initial    float64
	categories int
}

// New creates a Rater with default parameters.
func New(opts ...Option) *Rater {
	r := &Rater{
		kFactor:    defaultKFactor,
		initial:    defaultInitialRating,
		categories: defaultCategories,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// expected maps the rating gap to an expected outcome in [-1, 1].
func (r *Rater) expected(rating, opponent float64) float64 {
	ea := 1 / (1 + math.Pow(expBase, (opponent-rating)/ratingScale))
	return (ea - 0.5) * 2
}

// actual maps a matchup's adjusted category score to an outcome in
// [-1, 1]: sweeping every category is +1, losing them all is -1.
func (r *Rater) actual(m model.MatchupResult) float64 {
	span := float64(2 * r.categories)
	diff := m.AdjustedScore() - m.OpponentAdjustedScore()
	normalized := (diff + float64(r.categories)) / span
	return (normalized - 0.5) * 2
}

// Season replays results week by week and returns one rating row per
// team per played week, ordered by week then team number. Every team
// enters week 1 at the initial rating; a team with no result in a week
// carries its rating forward unchanged.
func (r *Rater) Season(results []model.MatchupResult) ([]model.EloRating, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no matchup results", ErrNoResults)
	}

	byWeek := make(map[int][]model.MatchupResult)
	weeks := make([]int, 0)
	for _, m := range results {
		if m.TeamNumber == m.OpponentNumber {
			return nil, fmt.Errorf("%w: team %d plays itself in week %d", ErrInvalidResult, m.TeamNumber, m.Week)
		}
		if _, ok := byWeek[m.Week]; !ok {
			weeks = append(weeks, m.Week)
		}
		byWeek[m.Week] = append(byWeek[m.Week], m)
	}
	sort.Ints(weeks)

	ratings := make(map[int]float64)
	rating := func(team int) float64 {
		if v, ok := ratings[team]; ok {
			return v
		}
		return r.initial
	}

	var out []model.EloRating
	for _, week := range weeks {
		wk := byWeek[week]
		sort.Slice(wk, func(i, j int) bool { return wk[i].TeamNumber < wk[j].TeamNumber })

		// Expected outcomes use the ratings entering the week for both
		// sides, so update order within a week cannot matter.
		entering := make(map[int]float64, len(wk))
		for _, m := range wk {
			entering[m.TeamNumber] = rating(m.TeamNumber)
			entering[m.OpponentNumber] = rating(m.OpponentNumber)
		}

		for _, m := range wk {
			expected := r.expected(entering[m.TeamNumber], entering[m.OpponentNumber])
			actual := r.actual(m)
			current := entering[m.TeamNumber]
			next := current + r.kFactor*(actual-expected)

			out = append(out, model.EloRating{
				TeamNumber: m.TeamNumber,
				Week:       week,
				Rating:     current,
				Expected:   expected,
				Actual:     actual,
				NewRating:  next,
			})
			ratings[m.TeamNumber] = next
		}
	}
	return out, nil
}
