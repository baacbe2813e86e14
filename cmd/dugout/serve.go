package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/dugout/internal/adapters/http/api"
	"github.com/okian/dugout/internal/adapters/render"
	"github.com/okian/dugout/pkg/logger"
)

const shutdownGrace = 5 * time.Second

func newServeCmd() *cobra.Command {
	var noRender bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pipeline and serve results over HTTP",
		Long: `Scores the configured season and exposes the results as a JSON API
with the rendered dashboard at the root path. Metrics are served in
Prometheus format at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

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

			siteDir := ""
			if !noRender {
				r, err := render.New(e.cfg.OutputDir)
				if err != nil {
					return err
				}
				if err := r.Site(ctx, e.svc.Store(), e.lg, e.cfg.Season); err != nil {
					return err
				}
				siteDir = e.cfg.OutputDir
			}

			mux := http.NewServeMux()
			api.NewServer(e.svc.Store(), api.WithSiteDir(siteDir)).Register(mux)

			srv := &http.Server{
				Addr:         e.cfg.Addr,
				Handler:      mux,
				ReadTimeout:  e.cfg.HTTPTimeout,
				WriteTimeout: e.cfg.HTTPTimeout,
			}

			lg := logger.Named("serve")
			errCh := make(chan error, 1)
			go func() {
				lg.Info(ctx, "listening", logger.String("addr", e.cfg.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			lg.Info(shutdownCtx, "shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&noRender, "no-render", false, "Skip rendering the static site")

	return cmd
}
