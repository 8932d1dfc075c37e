package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrit/quizdeck/internal/content"
	"github.com/amrit/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal quiz trainer",
	Long:  "Quizdeck — a terminal app for working through quiz tracks level by level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a quiz catalog JSON file (defaults to the built-in catalog)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the catalog named by --content, or falls back to the
// built-in one.
func resolveCatalog(cmd *cobra.Command) (*content.Catalog, error) {
	path, _ := cmd.Flags().GetString("content")
	if path == "" {
		return content.Seed(), nil
	}
	catalog, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}
