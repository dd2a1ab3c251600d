package cmd

import (
	"errors"
	"fmt"

	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/manualworlds/onemorenight-options/pkg/options"
	"github.com/manualworlds/onemorenight-options/pkg/plugin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var describeCmd = &cobra.Command{
	Use:   "describe <key>",
	Short: "Describe a single option",
	Long:  `Show the full definition and documentation of an option`,
	Args:  cobra.ExactArgs(1),
	RunE:  describeOption,
}

func describeOption(_ *cobra.Command, args []string) error {
	key := args[0]

	result, err := loadGame()
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	registered := true
	d, err := result.Options.Hint(key)
	if errors.Is(err, options.ErrUnknownOption) {
		registered = false
		d, err = findDeclared(key)
	}
	if err != nil {
		return err
	}

	logger.LogSection(d.DisplayName)
	logger.LogKeyValue("Key", d.Key)
	logger.LogKeyValue("Kind", d.Kind)
	logger.LogKeyValue("Default", d.FormatValue(d.Default))
	logger.LogKeyValue("Allowed", d.Describe())
	logger.LogKeyValue("Visibility", d.Visibility)
	if !registered {
		logger.LogKeyValue("Registered", "no (declared by the plugin only)")
	}
	if d.Documentation != "" {
		logger.LogSubSection("Documentation")
		fmt.Println(d.Documentation)
	}

	return nil
}

// findDeclared looks the key up among the definitions the plugin declares
func findDeclared(key string) (*options.Definition, error) {
	p, err := plugin.DefaultRegistry.Get(viper.GetString("game"))
	if err != nil {
		return nil, err
	}

	if declarer, ok := p.(plugin.Declarer); ok {
		for _, d := range declarer.Declared() {
			if d.Key == key {
				return d, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", options.ErrUnknownOption, key)
}
