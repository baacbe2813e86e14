// Package ingest reads prepared season fixture files. The upstream
// scraper drops YAML snapshots of stat lines, standings, matchups and
// the schedule; everything here parses those into domain models and
// collapses legacy category spellings onto the canonical set.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/okian/dugout/internal/domain/category"
	"github.com/okian/dugout/internal/domain/league"
	"github.com/okian/dugout/internal/domain/model"
)

// Fixture file names inside a season directory.
const (
	statsFile     = "stats.yaml"
	standingsFile = "standings.yaml"
	matchupsFile  = "matchups.yaml"
	scheduleFile  = "schedule.yaml"
)

// Loader parses fixture files against a category set.
type Loader struct {
	set *category.Set
}

// NewLoader creates a Loader for the given category set.
func NewLoader(set *category.Set) *Loader {
	return &Loader{set: set}
}

// seasonStatsDoc is the on-disk shape of stats.yaml.
type seasonStatsDoc struct {
	Year  int `yaml:"year"`
	Weeks []struct {
		Week  int `yaml:"week"`
		Teams []struct {
			Team   int                `yaml:"team"`
			Values map[string]float64 `yaml:"values"`
		} `yaml:"teams"`
	} `yaml:"weeks"`
}

// SeasonStats reads every week's stat lines for the season directory,
// keyed by week. Category names are canonicalized; a value under an
// unknown name fails loading rather than silently dropping a stat.
func (l *Loader) SeasonStats(seasonDir string) (map[int][]model.StatLine, error) {
	var doc seasonStatsDoc
	if err := readYAML(filepath.Join(seasonDir, statsFile), &doc); err != nil {
		return nil, err
	}

	out := make(map[int][]model.StatLine, len(doc.Weeks))
	for _, wk := range doc.Weeks {
		lines := make([]model.StatLine, 0, len(wk.Teams))
		for _, t := range wk.Teams {
			values := make(map[string]float64, len(t.Values))
			for name, v := range t.Values {
				canonical, err := l.set.Canonical(name)
				if err != nil {
					return nil, fmt.Errorf("%w: %s week %d team %d: %w", ErrBadFixture, statsFile, wk.Week, t.Team, err)
				}
				values[canonical] = v
			}
			lines = append(lines, model.StatLine{
				TeamNumber: t.Team,
				Week:       wk.Week,
				Year:       doc.Year,
				Values:     values,
			})
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].TeamNumber < lines[j].TeamNumber })
		out[wk.Week] = lines
	}
	return out, nil
}

// standingsDoc is the on-disk shape of standings.yaml.
type standingsDoc struct {
	Year  int `yaml:"year"`
	Weeks []struct {
		Week  int `yaml:"week"`
		Ranks []struct {
			Team int `yaml:"team"`
			Rank int `yaml:"rank"`
		} `yaml:"ranks"`
	} `yaml:"weeks"`
}

// Standings reads the actual league ranks per week.
func (l *Loader) Standings(seasonDir string) (map[int][]model.Standing, error) {
	var doc standingsDoc
	if err := readYAML(filepath.Join(seasonDir, standingsFile), &doc); err != nil {
		return nil, err
	}

	out := make(map[int][]model.Standing, len(doc.Weeks))
	for _, wk := range doc.Weeks {
		rows := make([]model.Standing, 0, len(wk.Ranks))
		for _, r := range wk.Ranks {
			rows = append(rows, model.Standing{TeamNumber: r.Team, Week: wk.Week, Rank: r.Rank})
		}
		out[wk.Week] = rows
	}
	return out, nil
}

// matchupsDoc is the on-disk shape of matchups.yaml.
type matchupsDoc struct {
	Year     int `yaml:"year"`
	Matchups []struct {
		Week         int     `yaml:"week"`
		Team         int     `yaml:"team"`
		Opponent     int     `yaml:"opponent"`
		Wins         float64 `yaml:"wins"`
		OpponentWins float64 `yaml:"opponent_wins"`
		Ties         float64 `yaml:"ties"`
	} `yaml:"matchups"`
}

// Matchups reads the raw matchup outcomes for a season, ordered by week
// then team number.
func (l *Loader) Matchups(seasonDir string) ([]model.MatchupResult, error) {
	var doc matchupsDoc
	if err := readYAML(filepath.Join(seasonDir, matchupsFile), &doc); err != nil {
		return nil, err
	}

	out := make([]model.MatchupResult, 0, len(doc.Matchups))
	for _, m := range doc.Matchups {
		out = append(out, model.MatchupResult{
			Year:           doc.Year,
			Week:           m.Week,
			TeamNumber:     m.Team,
			OpponentNumber: m.Opponent,
			CategoryWins:   m.Wins,
			OpponentWins:   m.OpponentWins,
			Ties:           m.Ties,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].TeamNumber < out[j].TeamNumber
	})
	return out, nil
}

// scheduleDoc is the on-disk shape of schedule.yaml.
type scheduleDoc struct {
	Year    int `yaml:"year"`
	Entries []struct {
		Week     int `yaml:"week"`
		Team     int `yaml:"team"`
		Opponent int `yaml:"opponent"`
	} `yaml:"entries"`
}

// Schedule reads the season schedule.
func (l *Loader) Schedule(seasonDir string) ([]model.ScheduleEntry, error) {
	var doc scheduleDoc
	if err := readYAML(filepath.Join(seasonDir, scheduleFile), &doc); err != nil {
		return nil, err
	}

	out := make([]model.ScheduleEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		out = append(out, model.ScheduleEntry{
			Year:           doc.Year,
			Week:           e.Week,
			TeamNumber:     e.Team,
			OpponentNumber: e.Opponent,
		})
	}
	return out, nil
}

// leagueDoc is the on-disk shape of league.yaml.
type leagueDoc struct {
	Managers []string `yaml:"managers"`
	Seats    []struct {
		Year    int    `yaml:"year"`
		Team    int    `yaml:"team"`
		Manager string `yaml:"manager"`
	} `yaml:"seats"`
}

// LoadLeague reads the league membership table.
func LoadLeague(path string) (*league.Config, error) {
	var doc leagueDoc
	if err := readYAML(path, &doc); err != nil {
		return nil, err
	}

	seats := make(map[league.Seat]string, len(doc.Seats))
	for _, s := range doc.Seats {
		seats[league.Seat{Year: s.Year, TeamNumber: s.Team}] = s.Manager
	}
	cfg, err := league.New(doc.Managers, seats)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadFixture, path, err)
	}
	return cfg, nil
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadFixture, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBadFixture, path, err)
	}
	return nil
}
