// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file/env on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"time"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for serve mode, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataDir is the root of the season fixture files.
	DataDir string `koanf:"data_dir"`

	// LeagueFile locates the league membership table (managers, seats).
	LeagueFile string `koanf:"league_file"`

	// CategoryFile optionally overrides the built-in category table.
	CategoryFile string `koanf:"category_file"`

	// Season is the year the live pipeline runs against.
	Season int `koanf:"season"`

	// OutputDir receives rendered dashboard pages.
	OutputDir string `koanf:"output_dir"`

	// ScorePrecision is the number of decimals normalized scores keep.
	ScorePrecision int `koanf:"score_precision"`

	// MatchupCategories is how many categories one matchup scores.
	MatchupCategories int `koanf:"matchup_categories"`

	// EloKFactor and EloInitialRating parameterize the rating replay.
	EloKFactor       float64 `koanf:"elo_k_factor"`
	EloInitialRating float64 `koanf:"elo_initial_rating"`

	// Dynamo configures the DynamoDB export target.
	Dynamo DynamoConfig `koanf:"dynamo"`

	// Publish configures the static site upload target.
	Publish PublishConfig `koanf:"publish"`

	// HTTPTimeout bounds serve-mode request handling.
	HTTPTimeout time.Duration `koanf:"http_timeout"`
}

// DynamoConfig holds the DynamoDB export settings.
type DynamoConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Region      string `koanf:"region"`
	TablePrefix string `koanf:"table_prefix"`
	Endpoint    string `koanf:"endpoint"`
}

// PublishConfig holds the static site upload settings.
type PublishConfig struct {
	Bucket    string `koanf:"bucket"`
	Region    string `koanf:"region"`
	Prefix    string `koanf:"prefix"`
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		DataDir:           "data",
		LeagueFile:        "data/league.yaml",
		OutputDir:         "site",
		Season:            time.Now().Year(),
		ScorePrecision:    2,
		MatchupCategories: 12,
		EloKFactor:        50,
		EloInitialRating:  1000,
		Dynamo: DynamoConfig{
			Region:      "us-west-2",
			TablePrefix: "FantasyBaseball",
		},
		Publish: PublishConfig{
			Region: "us-west-2",
		},
		HTTPTimeout: 10 * time.Second,
	}
}
