package cmd

import (
	"fmt"

	"github.com/socralabs/socra/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "socra",
	Short: "Socratic tutor for the terminal",
	Long:  "Socra — a terminal tutor that teaches by questioning: it probes one concept at a time and never hands out answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOCRA_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath honors an explicit --db first; otherwise the store
// falls back through SOCRA_DB to the XDG data directory.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path for cmd and opens the store.
// The caller owns the Close.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
