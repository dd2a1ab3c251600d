package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manualworlds/onemorenight-options/pkg/config"
	"github.com/spf13/cobra"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List saved player settings",
	RunE:  listPlayers,
}

func listPlayers(_ *cobra.Command, _ []string) error {
	dir, err := playersDir()
	if err != nil {
		return err
	}

	paths, err := config.ListPlayerSettings(dir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Printf("No player settings in %s\n", dir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tGAME\tFILE")
	_, _ = fmt.Fprintln(w, "----\t----\t----")

	for _, path := range paths {
		settings, err := config.LoadPlayerSettings(path)
		if err != nil {
			_, _ = fmt.Fprintf(w, "?\t?\t%s (%v)\n", path, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", settings.Name, settings.Game, path)
	}

	return w.Flush()
}
