package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/dugout/internal/config"
)

func newRunCmd() *cobra.Command {
	var season int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Score a season's weekly stats",
		Long: `Runs the weekly pipeline for the configured season: normalization,
composite power ranking, rank variation, and all-play luck analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var overrides []func(*config.Config)
			if season > 0 {
				overrides = append(overrides, func(c *config.Config) { c.Season = season })
			}
			e, err := bootstrap(ctx, overrides...)
			if err != nil {
				return err
			}
			return e.svc.RunSeason(ctx, e.seasonDir())
		},
	}

	cmd.Flags().IntVar(&season, "season", 0, "Season year (default: configured season)")

	return cmd
}
