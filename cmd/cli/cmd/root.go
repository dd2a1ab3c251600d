package cmd

import (
	"fmt"
	"strings"

	"github.com/manualworlds/onemorenight-options/pkg/config"
	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/manualworlds/onemorenight-options/pkg/plugin"
	"github.com/manualworlds/onemorenight-options/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import games to register them
	_ "github.com/manualworlds/onemorenight-options/cmd/onemorenight"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "manual-opts",
	Short: "Manual game options CLI",
	Long: `manual-opts loads a Manual game plugin the same way the randomizer host does
and lets you inspect its options, render a player settings template,
build player settings interactively and validate existing settings files.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.manual-opts/config.yaml)")
	rootCmd.PersistentFlags().String("game", "onemorenight", "game plugin to load")
	rootCmd.PersistentFlags().String("manifest", "", "game manifest to use instead of the plugin's own")
	rootCmd.PersistentFlags().String("players-dir", "", "directory player settings are saved in (default is $HOME/.manual-opts/players)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = viper.BindPFlag("game", rootCmd.PersistentFlags().Lookup("game"))
	_ = viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("players_dir", rootCmd.PersistentFlags().Lookup("players-dir"))

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(gamesCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	// Configure logger based on flags
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.manual-opts")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MANUAL_OPTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("Using config file %s", viper.ConfigFileUsed())
	}
}

// loadGame runs the selected plugin through every load phase
func loadGame() (*plugin.Result, error) {
	name := viper.GetString("game")

	p, err := plugin.DefaultRegistry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(plugin.DefaultRegistry.List(), ", "))
	}

	loader := plugin.NewLoader()

	if path := viper.GetString("manifest"); path != "" {
		m, err := utils.LoadManifest(path)
		if err != nil {
			return nil, err
		}
		return loader.LoadWithManifest(p, m)
	}

	return loader.Load(p)
}

// playersDir returns the configured players directory
func playersDir() (string, error) {
	if dir := viper.GetString("players_dir"); dir != "" {
		return dir, nil
	}
	return config.DefaultPlayersDir()
}
