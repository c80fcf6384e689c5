package cmd

import (
	"os"

	"github.com/danoh/steptutor/internal/docstore"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "steptutor",
	Short: "Document library and AI math tutor server",
	Long:  "Steptutor serves a folder/PDF document library with retrieval-augmented chat and a step-by-step LLM math tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STEPTUTOR_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STEPTUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, docstore.EnsureDir(p)
	}
	if p := os.Getenv("STEPTUTOR_DB"); p != "" {
		return p, docstore.EnsureDir(p)
	}
	return docstore.DefaultDBPath()
}
