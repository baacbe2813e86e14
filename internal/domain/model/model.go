// Package model contains domain models passed between pipeline stages.
package model

// StatLine holds one team's raw category values for a scored week.
// Lines are append-only: a correction overwrites the week's record, it
// never appends a second line for the same (year, week, team).
type StatLine struct {
	TeamNumber int
	Week       int
	Year       int
	// Values maps canonical category name to the raw stat value.
	Values map[string]float64
}

// NormalizedScore is one team's 0-100 score for a single category-week.
// It is always derived from the week's stat lines, never stored on its own.
type NormalizedScore struct {
	TeamNumber int
	Week       int
	Category   string
	Score      float64
}

// CompositeScore is a team's week summary: the normalized-score total,
// the rank it implies, the actual standings rank, and the gap between
// the two. A negative variation means the team sits higher in the
// standings than its stats justify.
type CompositeScore struct {
	TeamNumber       int
	Week             int
	TotalScoreSum    float64
	BattingScoreSum  float64
	PitchingScoreSum float64
	StatsPowerRank   int
	LeagueRank       int
	ScoreVariation   int
}

// MatchupResult is the raw outcome of one played matchup as recorded by
// ingestion. CategoryWins counts categories won outright; ties are the
// categories neither side won.
type MatchupResult struct {
	Year           int
	Week           int
	TeamNumber     int
	OpponentNumber int
	CategoryWins   float64
	OpponentWins   float64
	Ties           float64
}

// AdjustedScore is the matchup score with ties counted as half a win.
func (m MatchupResult) AdjustedScore() float64 {
	return m.CategoryWins + m.Ties*0.5
}

// OpponentAdjustedScore mirrors AdjustedScore for the other side.
func (m MatchupResult) OpponentAdjustedScore() float64 {
	return m.OpponentWins + m.Ties*0.5
}

// Standing is a team's actual win-loss position as published by the
// league host. Rank 1 is first place.
type Standing struct {
	TeamNumber int
	Week       int
	Rank       int
}

// ScheduleEntry pairs a team with its opponent for one week.
type ScheduleEntry struct {
	Year           int
	Week           int
	TeamNumber     int
	OpponentNumber int
}

// EloRating is a team's rating entering a week, with the expected and
// actual outcomes that produced the following week's rating.
type EloRating struct {
	TeamNumber int
	Week       int
	Rating     float64
	Expected   float64
	Actual     float64
	NewRating  float64
}

// LuckLine summarizes one team-week of the all-play analysis: the wins
// the category spread implied against the wins actually banked.
type LuckLine struct {
	TeamNumber   int
	Week         int
	ExpectedWins float64
	ActualWins   float64
	Luck         float64
}
