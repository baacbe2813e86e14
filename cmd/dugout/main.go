// Package main provides the dugout CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dugout",
		Short: "Fantasy baseball league analytics",
		Long: `Dugout normalizes weekly category stats into 0-100 scores, ranks teams
by composite power score, measures rank luck against the real standings,
and maintains cumulative head-to-head and Elo records.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newH2HCmd(),
		newEloCmd(),
		newRenderCmd(),
		newPublishCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
