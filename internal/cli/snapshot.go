package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ml-platform/internal/adapters/secondary/memory"
	"ml-platform/internal/adapters/secondary/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the snapshot of the seeded demo data",
	Long: `Build the demo store and print its snapshot document, the same JSON
the file sink writes after every change.

Examples:
  mlplatform snapshot                       # Print to stdout
  mlplatform snapshot --out data/seed.json  # Write to a file`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

var snapshotOut string

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "Write to this file instead of stdout")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	store, err := memory.NewSeededStore()
	if err != nil {
		return err
	}

	if snapshotOut != "" {
		if err := snapshot.NewFileWriter(snapshotOut).Write(cmd.Context(), store.Snapshot(cmd.Context())); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot written to %s\n", snapshotOut)
		return nil
	}

	data, err := snapshot.Marshal(store.Snapshot(cmd.Context()))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
