package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/okian/dugout/internal/adapters/ingest"
	"github.com/okian/dugout/internal/adapters/storage"
	service "github.com/okian/dugout/internal/app"
	"github.com/okian/dugout/internal/config"
	"github.com/okian/dugout/internal/domain/category"
	"github.com/okian/dugout/internal/domain/league"
	"github.com/okian/dugout/pkg/logger"
)

// env bundles everything a subcommand needs after bootstrap.
type env struct {
	cfg *config.Config
	set *category.Set
	lg  *league.Config
	svc *service.Service
}

// bootstrap loads configuration, initializes logging, and builds the
// pipeline service with the configured export targets. Overrides apply
// flag values to the loaded config before anything is built from it.
func bootstrap(ctx context.Context, overrides ...func(*config.Config)) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}

	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}

	set := category.DefaultSet()
	if cfg.CategoryFile != "" {
		set, err = category.LoadSet(cfg.CategoryFile)
		if err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
	}

	lg, err := ingest.LoadLeague(cfg.LeagueFile)
	if err != nil {
		return nil, fmt.Errorf("loading league: %w", err)
	}

	opts := []service.Option{
		service.WithSeason(cfg.Season),
		service.WithPrecision(cfg.ScorePrecision),
		service.WithMatchupCategories(cfg.MatchupCategories),
		service.WithEloParams(cfg.EloKFactor, cfg.EloInitialRating),
	}

	if cfg.Dynamo.Enabled {
		store, err := storage.NewDynamoStore(ctx, storage.Config{
			Region:      cfg.Dynamo.Region,
			TablePrefix: cfg.Dynamo.TablePrefix,
			Endpoint:    cfg.Dynamo.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to dynamodb: %w", err)
		}
		opts = append(opts, service.WithExporter(store))
	}

	return &env{
		cfg: cfg,
		set: set,
		lg:  lg,
		svc: service.New(set, lg, opts...),
	}, nil
}

// seasonDir is the fixture directory of the configured season.
func (e *env) seasonDir() string {
	return filepath.Join(e.cfg.DataDir, strconv.Itoa(e.cfg.Season))
}
