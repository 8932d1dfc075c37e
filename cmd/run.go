package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrit/quizdeck/internal/app"
	"github.com/amrit/quizdeck/internal/progress"
	"github.com/amrit/quizdeck/internal/store"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	theme.Use(theme.ParseMode(st.LoadTheme()))

	return app.Run(app.Options{
		Catalog:  catalog,
		Progress: progress.NewService(st),
		Store:    st,
	})
}
