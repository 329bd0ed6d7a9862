package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mlplatform",
	Short: "ML experiment tracking dashboard",
	Long: `mlplatform is a small ML platform dashboard: projects, experiments with
simulated training runs, trained models and their deployments.

State lives in memory and is re-seeded with demo data on every start.
Every change is mirrored to the configured snapshot sinks.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
