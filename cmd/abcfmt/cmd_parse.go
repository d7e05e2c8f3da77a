package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/abcfmt/abc/parse"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <line>",
		Short: "Parse one line of music code and dump the token trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := parse.Match(args[0])
			if err != nil {
				var syntaxErr *parse.SyntaxError
				if errors.As(err, &syntaxErr) {
					fmt.Fprintln(os.Stderr, args[0])
					fmt.Fprintf(os.Stderr, "%s^\n", strings.Repeat(" ", syntaxErr.Offset))
				}
				return err
			}

			switch outputFormat {
			case "text":
				for _, root := range trace.Roots() {
					printTree(trace, root, 0)
				}
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(traceJSON(trace))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}

func printTree(t *parse.Trace, i, depth int) {
	tok := t.Tokens[i]
	fmt.Printf("%s%s [%d,%d) %q\n", strings.Repeat("  ", depth), tok.Rule, tok.Start, tok.End, t.Text(i))
	for _, child := range t.Children(i) {
		printTree(t, child, depth+1)
	}
}

type tokenJSON struct {
	Rule  string `json:"rule"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func traceJSON(t *parse.Trace) []tokenJSON {
	out := make([]tokenJSON, len(t.Tokens))
	for i, tok := range t.Tokens {
		out[i] = tokenJSON{
			Rule:  tok.Rule.String(),
			Start: tok.Start,
			End:   tok.End,
			Text:  t.Text(i),
		}
	}
	return out
}
