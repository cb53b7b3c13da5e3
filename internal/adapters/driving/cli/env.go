package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apikit/internal/util"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the detected locale, terminal and settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("Locale:    %s\n", util.Locale())

		if w, h, err := util.WindowSize(int(os.Stdout.Fd())); err == nil {
			cmd.Printf("Terminal:  %dx%d\n", w, h)
		} else {
			cmd.Println("Terminal:  none")
		}

		cmd.Println()
		cmd.Println("Search:")
		cmd.Printf("  split on space: %t\n", settings.Search.SplitOnSpace)
		cmd.Printf("  loose:          %t\n", settings.Search.Loose)
		cmd.Printf("  limit:          %d\n", settings.Search.Limit)
		cmd.Println("Debounce:")
		cmd.Printf("  delay:          %s\n", settings.Debounce.Delay)
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
