package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrit/quizdeck/internal/progress"
	"github.com/amrit/quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all recorded progress. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Delete(progress.RecordKey); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}
		fmt.Println("Progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
