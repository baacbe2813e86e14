package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DUGOUT_CONFIG is set
//  3. env (prefix DUGOUT_)
//
// A .env file in the working directory is folded into the environment
// first, matching how the deploy scripts pass credentials.
func Load() (*Config, error) {
	// Missing .env is fine; the deploy environment sets real env vars.
	_ = godotenv.Load()

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DUGOUT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DUGOUT_DATA_DIR -> data_dir. Leaf keys keep
	// their underscores to match the koanf tags, so nested keys use a
	// double underscore: DUGOUT_DYNAMO__TABLE_PREFIX -> dynamo.table_prefix.
	envProvider := env.Provider("DUGOUT_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "DUGOUT_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.DataDir == "":
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	case c.Season < 2000:
		return fmt.Errorf("%w: season %d is implausible", ErrInvalidConfig, c.Season)
	case c.ScorePrecision < 0:
		return fmt.Errorf("%w: score_precision must be >= 0", ErrInvalidConfig)
	case c.MatchupCategories < 1:
		return fmt.Errorf("%w: matchup_categories must be >= 1", ErrInvalidConfig)
	case c.EloKFactor <= 0:
		return fmt.Errorf("%w: elo_k_factor must be > 0", ErrInvalidConfig)
	}
	if c.Dynamo.Enabled && c.Dynamo.TablePrefix == "" {
		return fmt.Errorf("%w: dynamo.table_prefix required when dynamo export is enabled", ErrInvalidConfig)
	}
	return nil
}
