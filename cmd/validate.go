package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amrit/quizdeck/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Validate a quiz catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.LoadFile(args[0])
		if err != nil {
			return err
		}
		levels := 0
		for _, cat := range catalog.Categories {
			for _, spec := range cat.Specializations {
				levels += countLevels(&spec)
			}
		}
		fmt.Printf("OK: %d categories, %d levels\n", len(catalog.Categories), levels)
		return nil
	},
}

func countLevels(spec *content.Specialization) int {
	n := len(spec.Levels)
	for i := range spec.Children {
		n += countLevels(&spec.Children[i])
	}
	return n
}
