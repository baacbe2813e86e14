// Package composite aggregates normalized category scores into per-team
// power totals and ranks teams by them.
package composite

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/dugout/internal/domain/category"
	"github.com/okian/dugout/internal/domain/model"
)

// Scorer sums normalized scores and assigns stats power ranks.
type Scorer struct {
	set *category.Set
}

// New creates a Scorer over the given category set. The set supplies the
// batting/pitching grouping for the split totals.
func New(set *category.Set) *Scorer {
	return &Scorer{set: set}
}

// Totals folds one week of normalized scores into a composite row per
// team and ranks the rows 1..N by total score, highest first.
//
// Ties in the total break by ascending team number. The tie-break is
// arbitrary but fixed: repeat runs over identical input must assign
// identical ranks, because the rank feeds the variation analysis.
func (s *Scorer) Totals(scores []model.NormalizedScore) ([]model.CompositeScore, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: no normalized scores", ErrNoScores)
	}

	week := scores[0].Week
	totals := make(map[int]*model.CompositeScore)
	for _, sc := range scores {
		if sc.Week != week {
			return nil, fmt.Errorf("%w: score for team %d is week %d, want %d", ErrMixedWeeks, sc.TeamNumber, sc.Week, week)
		}
		def, ok := s.set.Lookup(sc.Category)
		if !ok {
			return nil, fmt.Errorf("%w: %q", category.ErrUnknownCategory, sc.Category)
		}

		row, ok := totals[sc.TeamNumber]
		if !ok {
			row = &model.CompositeScore{TeamNumber: sc.TeamNumber, Week: week}
			totals[sc.TeamNumber] = row
		}
		row.TotalScoreSum += sc.Score
		switch def.Group {
		case category.GroupBatting:
			row.BattingScoreSum += sc.Score
		case category.GroupPitching:
			row.PitchingScoreSum += sc.Score
		}
	}

	rows := make([]model.CompositeScore, 0, len(totals))
	for _, row := range totals {
		row.TotalScoreSum = round2(row.TotalScoreSum)
		row.BattingScoreSum = round2(row.BattingScoreSum)
		row.PitchingScoreSum = round2(row.PitchingScoreSum)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalScoreSum != rows[j].TotalScoreSum {
			return rows[i].TotalScoreSum > rows[j].TotalScoreSum
		}
		return rows[i].TeamNumber < rows[j].TeamNumber
	})
	for i := range rows {
		rows[i].StatsPowerRank = i + 1
	}
	return rows, nil
}

// round2 removes the float drift a long summation of 2-decimal scores
// accumulates.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
