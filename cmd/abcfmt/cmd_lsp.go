package main

import (
	"github.com/dhamidi/abcfmt/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			return lsp.NewServer(version).RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbose", 1, "log verbosity (0-2)")

	return cmd
}
