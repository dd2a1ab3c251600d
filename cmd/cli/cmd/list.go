package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the options of the game",
	Long:  `List every option the game defines after all plugin hooks ran`,
	RunE:  listOptions,
}

func init() {
	listCmd.Flags().Bool("all", false, "include hidden options")
}

func listOptions(cmd *cobra.Command, _ []string) error {
	showAll, _ := cmd.Flags().GetBool("all")

	result, err := loadGame()
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if showAll {
		_, _ = fmt.Fprintln(w, "KEY\tKIND\tDEFAULT\tVISIBLE\tDISPLAY NAME")
		_, _ = fmt.Fprintln(w, "---\t----\t-------\t-------\t------------")
	} else {
		_, _ = fmt.Fprintln(w, "KEY\tKIND\tDEFAULT\tDISPLAY NAME")
		_, _ = fmt.Fprintln(w, "---\t----\t-------\t------------")
	}

	for _, d := range result.Options.Definitions() {
		if d.Hidden() && !showAll {
			continue
		}
		def := d.FormatValue(d.Default)
		if showAll {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n", d.Key, d.Kind, def, d.Visibility, d.DisplayName)
		} else {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", d.Key, d.Kind, def, d.DisplayName)
		}
	}

	return w.Flush()
}
