package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Group labels.
const (
	GroupBatting  = "batting"
	GroupPitching = "pitching"
)

// battingDefaults lists the 37 scored batting and fielding categories.
// Stat codes follow the league host's spellings; pitching counterparts of
// shared codes carry an A suffix (HA, HRA, BBA) so a stat line can hold
// both sides of the ball in one mapping.
var battingDefaults = []Definition{
	{Name: "GP", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "PA", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "AB", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "R", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "H", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "1B", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "2B", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "3B", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "HR", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "RBI", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "SH", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "SF", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "SB", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "CS", Direction: LowerIsBetter, Group: GroupBatting},
	{Name: "BB", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "IBB", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "HBP", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "K", Direction: LowerIsBetter, Group: GroupBatting},
	{Name: "GDP", Direction: LowerIsBetter, Group: GroupBatting},
	{Name: "TB", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "AVG", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "OBP", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "SLG", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "OPS", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "XBH", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "NSB", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "SB%", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "CYC", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "SLAM", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "RC", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "PO", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "A", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "E", Direction: LowerIsBetter, Group: GroupBatting},
	{Name: "FLD%", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "DPT", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "OFA", Direction: HigherIsBetter, Group: GroupBatting},
	{Name: "CI", Direction: LowerIsBetter, Group: GroupBatting},
}

// pitchingDefaults lists the 51 scored pitching categories.
var pitchingDefaults = []Definition{
	{Name: "APP", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "GS", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "CG", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "SHO", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "W", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "L", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "PCT", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "SV", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "BS", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "HLD", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "SVH", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "SV%", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "IP", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "HA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "RA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "ER", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "HRA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "BBA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "IBBA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "HBPA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "SO", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "WP", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "BK", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "SBA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "CSA", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "PICK", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "TBF", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "QS", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "NH", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "PG", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "ERA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "WHIP", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "K/9", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "K/BB", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "BB/9", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "H/9", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "HR/9", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "OBA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "GF", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "RAPP", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "RW", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "RL", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "IR", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "IRS", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "1BA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "2BA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "3BA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "XBHA", Direction: LowerIsBetter, Group: GroupPitching},
	{Name: "GIDPF", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "LOB%", Direction: HigherIsBetter, Group: GroupPitching},
	{Name: "PIT", Direction: LowerIsBetter, Group: GroupPitching},
}

// legacyAliases maps spellings seen in historical exports onto canonical
// codes. The old scraper suffixed duplicate pitching columns with ".1".
var legacyAliases = map[string]string{
	"HR.1":  "HRA",
	"H.1":   "HA",
	"BB.1":  "BBA",
	"K.1":   "SO",
	"R.1":   "RA",
	"HBP.1": "HBPA",
	"IBB.1": "IBBA",
}

// DefaultSet returns the full 88-category set (37 batting and fielding,
// 51 pitching) with the legacy aliases registered.
func DefaultSet() *Set {
	s, err := NewSet(append(append([]Definition{}, battingDefaults...), pitchingDefaults...),
		WithAliases(legacyAliases),
	)
	if err != nil {
		// The built-in table is validated by tests; a collision here is a
		// programming error.
		panic(err)
	}
	return s
}

// yamlDefinition is the on-disk shape for category overrides.
type yamlDefinition struct {
	Name      string `yaml:"name"`
	Group     string `yaml:"group"`
	Direction string `yaml:"direction"`
}

// LoadSet reads a category table from a YAML file. Each entry carries a
// name, a group, and a direction of "higher" or "lower".
func LoadSet(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category table: %w", err)
	}

	var entries []yamlDefinition
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse category table: %w", err)
	}

	defs := make([]Definition, 0, len(entries))
	for _, e := range entries {
		var dir Direction
		switch e.Direction {
		case "higher", "":
			dir = HigherIsBetter
		case "lower":
			dir = LowerIsBetter
		default:
			return nil, fmt.Errorf("%w: direction %q for %q", ErrInvalidDefinition, e.Direction, e.Name)
		}
		defs = append(defs, Definition{Name: e.Name, Direction: dir, Group: e.Group})
	}
	return NewSet(defs, WithAliases(legacyAliases))
}
