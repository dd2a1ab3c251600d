package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manualworlds/onemorenight-options/pkg/config"
	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/manualworlds/onemorenight-options/pkg/options"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a player settings file",
	Long:  `Resolve a player settings file against the game's options and print the result`,
	Args:  cobra.ExactArgs(1),
	RunE:  validateSettings,
}

func validateSettings(_ *cobra.Command, args []string) error {
	result, err := loadGame()
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	settings, err := config.LoadPlayerSettings(args[0])
	if err != nil {
		return err
	}

	values, err := checkSettings(result.Manifest.GameName(), result.Options, settings)
	if err != nil {
		return err
	}

	logger.Successf("%s is valid for %s", args[0], settings.Name)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tVALUE\tENABLED")
	_, _ = fmt.Fprintln(w, "---\t-----\t-------")
	for _, d := range result.Options.Definitions() {
		value, _ := options.GetOptionValue(values, d.Key)
		_, _ = fmt.Fprintf(w, "%s\t%v\t%t\n", d.Key, d.FormatValue(value), options.IsOptionEnabled(values, d.Key))
	}

	return w.Flush()
}

// checkSettings resolves settings written for game against the loaded options
func checkSettings(game string, c *options.Container, settings *config.PlayerSettings) (options.Values, error) {
	if settings.Game != game {
		return nil, fmt.Errorf("settings are for %s, not %s", settings.Game, game)
	}

	values, err := options.Resolve(c, settings.Options)
	if err != nil {
		return nil, fmt.Errorf("invalid settings for %s: %w", settings.Name, err)
	}
	return values, nil
}
