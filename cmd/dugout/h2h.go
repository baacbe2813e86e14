package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newH2HCmd() *cobra.Command {
	var (
		years     []int
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "h2h",
		Short: "Build the cumulative head-to-head matrix",
		Long: `Folds every season's matchup results into one manager-by-manager
win-loss-tie matrix. Rerunning over the same seasons is a no-op: each
pairing counts once per week regardless of which side reported it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			if len(years) == 0 {
				years = e.lg.Years()
			}

			matrix, err := e.svc.RunH2H(ctx, e.cfg.DataDir, years)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(matrix)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&years, "years", nil, "Season years to include (default: all seasons in the league file)")
	cmd.Flags().StringVar(&outputFmt, "output", "none", "Output format: none or json")

	return cmd
}
