// Package category defines the canonical set of scored stat categories
// and the direction in which each one is ranked.
package category

import (
	"fmt"
	"strings"
)

// Direction states whether a larger raw value is better or worse.
type Direction int

const (
	// HigherIsBetter ranks larger raw values first (HR, RBI, SO, ...).
	HigherIsBetter Direction = iota
	// LowerIsBetter ranks smaller raw values first (ERA, WHIP, HRA, ...).
	LowerIsBetter
)

// String returns the direction as a human-readable label.
func (d Direction) String() string {
	if d == LowerIsBetter {
		return "lower"
	}
	return "higher"
}

// Definition describes one scored category. Definitions are immutable for
// the lifetime of a season.
type Definition struct {
	Name      string    `yaml:"name"`
	Direction Direction `yaml:"-"`
	// Group is "batting" or "pitching"; used for split power scores.
	Group string `yaml:"group"`
}

// Set is an ordered, immutable collection of category definitions with
// canonical-name lookup. Legacy data sources disagree on casing and
// separators ("HR.1", "hr_a", "HRA"), so all lookups go through fold.
type Set struct {
	defs  []Definition
	index map[string]int
}

// Option applies a configuration option to a Set under construction.
type Option func(*setBuilder)

type setBuilder struct {
	aliases map[string]string
}

// WithAliases registers extra legacy spellings that collapse onto a
// canonical category name before lookup.
func WithAliases(aliases map[string]string) Option {
	return func(b *setBuilder) {
		for from, to := range aliases {
			b.aliases[fold(from)] = to
		}
	}
}

// NewSet builds a Set from definitions. Definitions whose folded names
// collide are rejected so a season can never score one category twice.
func NewSet(defs []Definition, opts ...Option) (*Set, error) {
	b := &setBuilder{aliases: make(map[string]string)}
	for _, opt := range opts {
		opt(b)
	}

	s := &Set{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrInvalidDefinition)
		}
		key := fold(name)
		if _, dup := s.index[key]; dup {
			return nil, fmt.Errorf("%w: %q collides with an existing category", ErrDuplicateCategory, name)
		}
		def.Name = name
		s.index[key] = len(s.defs)
		s.defs = append(s.defs, def)
	}

	// Aliases resolve to already-registered canonical names. An alias
	// whose folded spelling lands on a different category's key would
	// silently reroute that category's data, so it is rejected like any
	// other duplicate.
	for from, to := range b.aliases {
		i, ok := s.index[fold(to)]
		if !ok {
			return nil, fmt.Errorf("%w: alias %q targets unknown category %q", ErrUnknownCategory, from, to)
		}
		if existing, dup := s.index[from]; dup && existing != i {
			return nil, fmt.Errorf("%w: alias %q collides with category %q", ErrDuplicateCategory, from, s.defs[existing].Name)
		}
		s.index[from] = i
	}
	return s, nil
}

// Lookup resolves a possibly legacy-spelled name to its definition.
func (s *Set) Lookup(name string) (Definition, bool) {
	i, ok := s.index[fold(name)]
	if !ok {
		return Definition{}, false
	}
	return s.defs[i], true
}

// Canonical returns the canonical spelling for name, or an error if the
// name does not resolve to any category in the set.
func (s *Set) Canonical(name string) (string, error) {
	def, ok := s.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return def.Name, nil
}

// Definitions returns the definitions in registration order. The returned
// slice is a copy; the set itself never changes after construction.
func (s *Set) Definitions() []Definition {
	out := make([]Definition, len(s.defs))
	copy(out, s.defs)
	return out
}

// Names returns the canonical category names in registration order.
func (s *Set) Names() []string {
	out := make([]string, len(s.defs))
	for i, def := range s.defs {
		out[i] = def.Name
	}
	return out
}

// Len returns the number of categories in the set.
func (s *Set) Len() int {
	return len(s.defs)
}

// fold collapses case and separator noise so that "HR.1", "hr_1" and
// "HR1" resolve to the same key.
func fold(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case ' ', '_', '-', '.', '/', '#', '@', '&', '+':
			continue
		}
		sb.WriteRune(r)
	}
	return strings.ToUpper(sb.String())
}
