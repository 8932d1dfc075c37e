package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/progress"
	"github.com/amrit/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print quiz statistics without starting the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		machine := nav.NewMachine(catalog, progress.NewService(st))
		machine.Apply(nav.OpenStats{})
		vm := machine.View()

		if len(vm.Rows) == 0 {
			fmt.Println("No progress recorded yet.")
			return nil
		}

		fmt.Printf("%-14s %-22s %8s %8s\n", "CATEGORY", "SPECIALIZATION", "PASSED", "POINTS")
		for _, row := range vm.Rows {
			fmt.Printf("%-14s %-22s %4d/%-3d %8d\n",
				row.Category, row.Specialization, row.PassedLevels, row.TotalLevels, row.Points)
		}
		fmt.Printf("\nTotal: %d/%d levels passed\n", vm.PassedLevels, vm.TotalLevels)
		return nil
	},
}
