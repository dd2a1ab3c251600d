package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/manualworlds/onemorenight-options/pkg/config"
	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/manualworlds/onemorenight-options/pkg/options"
	"github.com/manualworlds/onemorenight-options/pkg/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Create player settings",
	Long: `Prompt for every visible option and save the answers as player settings.
Values from MANUAL_<OPTION> environment variables become the prompt defaults.
Without a terminal, or with MANUAL_SKIP_PROMPTS=true, no prompts are shown.`,
	RunE: configurePlayer,
}

func init() {
	configureCmd.Flags().StringP("name", "n", "", "player name")
	configureCmd.Flags().StringP("description", "d", "", "settings description")
}

func configurePlayer(cmd *cobra.Command, _ []string) error {
	result, err := loadGame()
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		if !interactive {
			return fmt.Errorf("--name is required without a terminal")
		}
		prompt := &survey.Input{Message: "Player name:"}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	var defs []*options.Definition
	for _, g := range result.Groups {
		defs = append(defs, g.Options...)
	}
	defs = promptable(append(defs, result.Options.Definitions()...))

	logger.Setupf("Configuring %s for %s", name, result.Manifest.GameName())

	values, err := utils.PromptForOptions(defs, interactive)
	if err != nil {
		return fmt.Errorf("failed to get options: %w", err)
	}

	settings, err := config.NewPlayerSettings(name, result.Manifest.GameName(), result.Options, values)
	if err != nil {
		return err
	}
	settings.Description, _ = cmd.Flags().GetString("description")

	dir, err := playersDir()
	if err != nil {
		return err
	}

	path, err := config.SavePlayerSettings(dir, settings)
	if err != nil {
		return err
	}

	logger.Successf("Player settings saved to %s", path)
	return nil
}

// promptable keeps the first occurrence of every option shown in the simple UI
func promptable(defs []*options.Definition) []*options.Definition {
	seen := make(map[string]bool, len(defs))
	out := make([]*options.Definition, 0, len(defs))
	for _, d := range defs {
		if seen[d.Key] || d.Hidden() || !d.Visibility.Has(options.VisibilitySimpleUI) {
			continue
		}
		seen[d.Key] = true
		out = append(out, d)
	}
	return out
}
