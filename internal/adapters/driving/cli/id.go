package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/util"
)

var (
	idCount int
	idShort bool
)

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate random request IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if idCount < 1 {
			return fmt.Errorf("count must be at least 1: %w", domain.ErrInvalidInput)
		}
		for i := 0; i < idCount; i++ {
			if idShort {
				cmd.Println(util.ShortID())
			} else {
				cmd.Println(util.NewID())
			}
		}
		return nil
	},
}

func init() {
	idCmd.Flags().IntVarP(&idCount, "count", "c", 1, "number of IDs to generate")
	idCmd.Flags().BoolVar(&idShort, "short", false, "print the 8 character short form")
	rootCmd.AddCommand(idCmd)
}
