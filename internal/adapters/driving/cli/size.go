package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apikit/internal/util"
)

var sizeCmd = &cobra.Command{
	Use:   "size <bytes|size>",
	Short: "Convert between byte counts and human sizes",
	Long: `Given a plain byte count, prints it in IEC and SI units.
Given a human size such as "1.5 MiB" or "42kB", prints the byte count.`,
	Example: `  apikit size 1536
  apikit size "1.5 MiB"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if n, err := strconv.ParseUint(args[0], 10, 64); err == nil {
			cmd.Printf("%s (%s)\n", util.FormatBytes(n), util.FormatSize(n))
			return nil
		}

		n, err := util.ParseSize(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%d bytes\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
