package cmd

import (
	"fmt"

	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show option groups",
	Long:  `Show the final option groups in the order players see them`,
	RunE:  showGroups,
}

func showGroups(_ *cobra.Command, _ []string) error {
	result, err := loadGame()
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	if len(result.Groups) == 0 {
		fmt.Println("No option groups defined")
		return nil
	}

	for _, g := range result.Groups {
		items := make([]string, len(g.Options))
		for i, d := range g.Options {
			items[i] = fmt.Sprintf("%s (%s)", d.DisplayName, d.Key)
			if d.Hidden() {
				items[i] += " " + logger.IconHidden
			}
		}
		logger.LogList(g.Name, items)
	}

	return nil
}
