package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/manualworlds/onemorenight-options/pkg/plugin"
	"github.com/manualworlds/onemorenight-options/pkg/utils"
	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games [dir]",
	Short: "List available games",
	Long:  `List the registered game plugins and any game manifests found below dir`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  listGames,
}

func listGames(_ *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SOURCE\tNAME\tGAME")
	_, _ = fmt.Fprintln(w, "------\t----\t----")

	for _, name := range plugin.DefaultRegistry.List() {
		p, err := plugin.DefaultRegistry.Get(name)
		if err != nil {
			return err
		}
		data, err := p.Manifest()
		if err != nil {
			return fmt.Errorf("failed to read manifest of %s: %w", name, err)
		}
		m, err := utils.ParseManifest(data)
		if err != nil {
			return fmt.Errorf("plugin %s: %w", name, err)
		}
		_, _ = fmt.Fprintf(w, "plugin\t%s\t%s\n", name, m.GameName())
	}

	if len(args) == 1 {
		found, err := utils.DiscoverManifests(args[0])
		if err != nil {
			return err
		}
		dirs := make([]string, 0, len(found))
		for dir := range found {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		for _, dir := range dirs {
			_, _ = fmt.Fprintf(w, "manifest\t%s\t%s\n", dir, found[dir].GameName())
		}
	}

	return w.Flush()
}
