package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var copyPaste bool

var copyCmd = &cobra.Command{
	Use:   "copy [text]",
	Short: "Copy text to the clipboard",
	Long: `Copies the argument, or standard input when no argument is given, to the
system clipboard. With --paste the clipboard contents are printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVarP(&copyPaste, "paste", "p", false, "print the clipboard contents")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if clipboardPort == nil {
		return errors.New("clipboard not configured")
	}

	if copyPaste {
		text, err := clipboardPort.ReadText()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		cmd.Println(text)
		return nil
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	if err := clipboardPort.WriteText(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	cmd.Printf("Copied %d characters.\n", len([]rune(text)))
	return nil
}
