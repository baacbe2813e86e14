package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newEloCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "elo",
		Short: "Replay a season's matchups into Elo ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			series, err := e.svc.RunElo(ctx, e.seasonDir())
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(series)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "none", "Output format: none or json")

	return cmd
}
