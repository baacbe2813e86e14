// Package variation measures the gap between a team's stats-implied rank
// and its actual standings rank.
package variation

import (
	"fmt"

	"github.com/okian/dugout/internal/domain/model"
)

// Apply fills LeagueRank and ScoreVariation on each composite row from
// the supplied standings. Variation is statsPowerRank minus leagueRank:
// negative means the team sits higher in the standings than its stats
// justify (lucky), positive means it sits lower (unlucky).
//
// There is no smoothing or decay. The caller must supply standings at
// the same granularity as the composite rows; mixing a weekly power rank
// with season-cumulative standings produces a meaningless number.
func Apply(rows []model.CompositeScore, standings []model.Standing) ([]model.CompositeScore, error) {
	ranks := make(map[int]int, len(standings))
	for _, st := range standings {
		if st.Rank < 1 {
			return nil, fmt.Errorf("%w: team %d has rank %d", ErrInvalidStanding, st.TeamNumber, st.Rank)
		}
		if _, dup := ranks[st.TeamNumber]; dup {
			return nil, fmt.Errorf("%w: team %d appears twice", ErrInvalidStanding, st.TeamNumber)
		}
		ranks[st.TeamNumber] = st.Rank
	}

	out := make([]model.CompositeScore, len(rows))
	for i, row := range rows {
		rank, ok := ranks[row.TeamNumber]
		if !ok {
			return nil, fmt.Errorf("%w: no standings rank for team %d", ErrMissingStanding, row.TeamNumber)
		}
		row.LeagueRank = rank
		row.ScoreVariation = row.StatsPowerRank - rank
		out[i] = row
	}
	return out, nil
}
