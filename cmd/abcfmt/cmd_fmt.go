package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhamidi/abcfmt/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Canonify the music code of an .abc file",
		Long: `Canonify the music code of an .abc file to stdout.

Whitespace runs inside music code are squashed to a single space, trailing
whitespace is trimmed, and non-standard chord newline markers are rewritten
to ';'. Header fields, comments and free text pass through unchanged.
Music code that does not parse is kept verbatim and reported on stderr.

If a file is provided, it must have an .abc extension.
If no file is provided, reads ABC from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				ext := filepath.Ext(filename)
				if ext != ".abc" {
					return fmt.Errorf("expected .abc file, got %s", ext)
				}
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			output, warnings := format.CanonifyTunebook(source)
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "%s:%d: music code does not parse at offset %d\n",
					filename, w.Line, w.Offset)
			}

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
