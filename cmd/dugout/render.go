package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/dugout/internal/adapters/render"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run the pipeline and render the dashboard site",
		Long: `Scores the configured season, runs the head-to-head and Elo analyses,
and writes the static dashboard pages to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			if err := e.svc.RunSeason(ctx, e.seasonDir()); err != nil {
				return err
			}
			if _, err := e.svc.RunH2H(ctx, e.cfg.DataDir, e.lg.Years()); err != nil {
				return err
			}
			if _, err := e.svc.RunElo(ctx, e.seasonDir()); err != nil {
				return err
			}

			r, err := render.New(e.cfg.OutputDir)
			if err != nil {
				return err
			}
			return r.Site(ctx, e.svc.Store(), e.lg, e.cfg.Season)
		},
	}

	return cmd
}
