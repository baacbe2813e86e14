// Package league carries immutable league configuration: who the
// managers are and which team number each one held in a given year.
// Team numbers reshuffle whenever the host resets the league, and team
// names change mid-season, so the team number is the only stable
// within-season identifier and the manager name is the only stable
// cross-season one.
package league

import (
	"fmt"
	"sort"
)

// Seat identifies a team slot in one season.
type Seat struct {
	Year       int
	TeamNumber int
}

// Config is an immutable snapshot of league membership. Build one with
// New and pass it into each computation; nothing in the analytics core
// reads ambient state.
type Config struct {
	managers []string
	seats    map[Seat]string
}

// New validates and freezes a league configuration. Every seat must map
// to a known manager.
func New(managers []string, seats map[Seat]string) (*Config, error) {
	if len(managers) == 0 {
		return nil, fmt.Errorf("%w: no managers", ErrInvalidConfig)
	}

	known := make(map[string]struct{}, len(managers))
	sorted := make([]string, 0, len(managers))
	for _, m := range managers {
		if m == "" {
			return nil, fmt.Errorf("%w: empty manager name", ErrInvalidConfig)
		}
		if _, dup := known[m]; dup {
			return nil, fmt.Errorf("%w: duplicate manager %q", ErrInvalidConfig, m)
		}
		known[m] = struct{}{}
		sorted = append(sorted, m)
	}
	sort.Strings(sorted)

	frozen := make(map[Seat]string, len(seats))
	for seat, mgr := range seats {
		if _, ok := known[mgr]; !ok {
			return nil, fmt.Errorf("%w: seat %d/%d assigned to unknown manager %q", ErrUnknownManager, seat.Year, seat.TeamNumber, mgr)
		}
		frozen[seat] = mgr
	}

	return &Config{managers: sorted, seats: frozen}, nil
}

// Managers returns the manager names in stable (alphabetical) order.
func (c *Config) Managers() []string {
	out := make([]string, len(c.managers))
	copy(out, c.managers)
	return out
}

// Size returns the number of managers in the league.
func (c *Config) Size() int {
	return len(c.managers)
}

// Manager resolves a (year, team number) seat to its manager.
func (c *Config) Manager(year, teamNumber int) (string, error) {
	mgr, ok := c.seats[Seat{Year: year, TeamNumber: teamNumber}]
	if !ok {
		return "", fmt.Errorf("%w: no manager for team %d in %d", ErrUnknownManager, teamNumber, year)
	}
	return mgr, nil
}

// Years returns the seasons that have at least one seat assignment,
// in ascending order.
func (c *Config) Years() []int {
	seen := make(map[int]struct{})
	for seat := range c.seats {
		seen[seat.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
