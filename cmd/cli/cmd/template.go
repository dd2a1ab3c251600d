package cmd

import (
	"fmt"
	"os"

	"github.com/manualworlds/onemorenight-options/pkg/config"
	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Render a player settings template",
	Long:  `Render a player settings template with the default of every visible option`,
	RunE:  renderTemplate,
}

func init() {
	templateCmd.Flags().StringP("output", "o", "", "write the template to a file instead of stdout")
}

func renderTemplate(cmd *cobra.Command, _ []string) error {
	result, err := loadGame()
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	data, err := config.RenderTemplate(result.Manifest.GameName(), result.Options, result.Groups)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	logger.Successf("Template written to %s", output)
	return nil
}
