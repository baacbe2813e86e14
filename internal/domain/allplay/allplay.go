// Package allplay computes implied wins: how a team's week would have
// gone had it played every other team at once, and how lucky its actual
// result was against that baseline.
package allplay

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/dugout/internal/domain/category"
	"github.com/okian/dugout/internal/domain/model"
)

const defaultMatchupCategories = 12

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithMatchupCategories sets how many categories a head-to-head matchup
// actually scores. Implied win fractions scale onto this to produce an
// expected weekly win count.
func WithMatchupCategories(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.matchupCategories = n
		}
	}
}

// Analyzer derives expected wins from the full category spread.
type Analyzer struct {
	set               *category.Set
	matchupCategories int
}

// New creates an Analyzer over the given category set.
func New(set *category.Set, opts ...Option) *Analyzer {
	a := &Analyzer{
		set:               set,
		matchupCategories: defaultMatchupCategories,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WeekExpectedWins returns each team's expected win count for the week.
//
// Per category, a team's implied win is the fraction of opponents it
// beats, counting ties as half; the league leader implies 1.0 and the
// trailer 0.0. Averaging implied wins across every category and scaling
// by the matchup category count gives the wins the stat spread says the
// team deserved.
func (a *Analyzer) WeekExpectedWins(lines []model.StatLine) (map[int]float64, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need at least two stat lines", ErrNotEnoughTeams)
	}
	week := lines[0].Week
	for _, ln := range lines {
		if ln.Week != week {
			return nil, fmt.Errorf("%w: team %d is week %d, want %d", ErrMixedWeeks, ln.TeamNumber, ln.Week, week)
		}
	}

	impliedSums := make(map[int]float64, len(lines))
	for _, def := range a.set.Definitions() {
		for _, ln := range lines {
			v, ok := ln.Values[def.Name]
			if !ok {
				return nil, fmt.Errorf("%w: team %d week %d is missing %q", ErrIncompleteData, ln.TeamNumber, week, def.Name)
			}

			var beaten float64
			for _, other := range lines {
				if other.TeamNumber == ln.TeamNumber {
					continue
				}
				ov, ok := other.Values[def.Name]
				if !ok {
					return nil, fmt.Errorf("%w: team %d week %d is missing %q", ErrIncompleteData, other.TeamNumber, week, def.Name)
				}
				switch {
				case v == ov:
					beaten += 0.5
				case beats(v, ov, def.Direction):
					beaten++
				}
			}
			impliedSums[ln.TeamNumber] += beaten / float64(len(lines)-1)
		}
	}

	out := make(map[int]float64, len(lines))
	for team, sum := range impliedSums {
		avg := sum / float64(a.set.Len())
		out[team] = round2(avg * float64(a.matchupCategories))
	}
	return out, nil
}

// Luck compares each team's expected wins to its actual adjusted
// matchup score for the same week. Positive luck means the team banked
// more wins than its stats implied.
func (a *Analyzer) Luck(lines []model.StatLine, results []model.MatchupResult) ([]model.LuckLine, error) {
	expected, err := a.WeekExpectedWins(lines)
	if err != nil {
		return nil, err
	}
	week := lines[0].Week

	actual := make(map[int]float64, len(results))
	for _, m := range results {
		if m.Week != week {
			continue
		}
		actual[m.TeamNumber] = m.AdjustedScore()
	}

	out := make([]model.LuckLine, 0, len(expected))
	for team, exp := range expected {
		act, ok := actual[team]
		if !ok {
			return nil, fmt.Errorf("%w: no matchup result for team %d week %d", ErrMissingResult, team, week)
		}
		out = append(out, model.LuckLine{
			TeamNumber:   team,
			Week:         week,
			ExpectedWins: exp,
			ActualWins:   act,
			Luck:         round2(act - exp),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamNumber < out[j].TeamNumber })
	return out, nil
}

// beats reports whether value v defeats ov under the category direction.
func beats(v, ov float64, dir category.Direction) bool {
	if dir == category.LowerIsBetter {
		return v < ov
	}
	return v > ov
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
