package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/abcfmt/format"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "check [file]",
		Short:         "Report music code that does not parse",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			filename := "<stdin>"

			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			_, warnings := format.CanonifyTunebook(source)
			for _, w := range warnings {
				fmt.Printf("%s:%d: syntax error at offset %d\n", filename, w.Line, w.Offset)
				fmt.Printf("  %s\n", w.Text)
				fmt.Printf("  %*s^\n", w.Offset, "")
			}
			if len(warnings) > 0 {
				return fmt.Errorf("%d line(s) failed to parse", len(warnings))
			}
			return nil
		},
	}
}
