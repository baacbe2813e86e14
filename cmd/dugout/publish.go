package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/dugout/internal/adapters/publish"
)

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the rendered site to the configured bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			p, err := publish.NewS3Publisher(ctx, publish.Config{
				Bucket:    e.cfg.Publish.Bucket,
				Region:    e.cfg.Publish.Region,
				Prefix:    e.cfg.Publish.Prefix,
				Endpoint:  e.cfg.Publish.Endpoint,
				AccessKey: e.cfg.Publish.AccessKey,
				SecretKey: e.cfg.Publish.SecretKey,
			})
			if err != nil {
				return err
			}

			n, err := p.SiteDir(ctx, e.cfg.OutputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d files to %s\n", n, e.cfg.Publish.Bucket)
			return nil
		},
	}

	return cmd
}
