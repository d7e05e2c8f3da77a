package format

import (
	"strings"

	"github.com/dhamidi/abcfmt/abc/grammar"
	"github.com/dhamidi/abcfmt/abc/parse"
)

// CanonifyMusicCode parses one line of ABC music code and returns its
// canonical form: runs of spaces and tabs squashed to a single space,
// trailing whitespace on the line ending trimmed, and the non-standard
// chord-symbol newline marker rewritten to ';'. Every other byte of the
// input is reproduced verbatim. A single trailing "\n" or "\r\n" is
// stripped before parsing; joining or splitting multi-line tunes is the
// caller's concern.
func CanonifyMusicCode(line string) (string, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	trace, err := parse.Match(line)
	if err != nil {
		return "", err
	}
	return canonify(trace), nil
}

func canonify(t *parse.Trace) string {
	var out strings.Builder
	for i := 0; i < len(t.Tokens); {
		var r rtext
		r, i = visit(t, i)
		out.WriteString(r.text(t.Input))
	}
	return out.String()
}

// visit produces the canonical fragment for token i and returns the index
// just past its subtree. Every rule not cased here passes through
// unchanged via gather.
func visit(t *parse.Trace, i int) (rtext, int) {
	switch t.Tokens[i].Rule {
	case grammar.AbcEOL:
		// trim trailing whitespace before the end of line
		r, next := gather(t, i)
		return owned(strings.TrimSpace(r.text(t.Input))), next

	case grammar.ChordNewline:
		// canonify to ';' regardless of which spelling matched
		return owned(";"), t.Next(i)

	case grammar.WSP:
		// squash any whitespace run to a single space
		if t.Text(i) == " " {
			return borrowed(t.Tokens[i].Start, t.Tokens[i].End), t.Next(i)
		}
		return owned(" "), t.Next(i)

	default:
		return gather(t, i)
	}
}

// gather concatenates the canonical fragments of token i's children,
// interleaved with the plain text between them, or returns the token's
// own span when it has no children.
func gather(t *parse.Trace, i int) (rtext, int) {
	tok := t.Tokens[i]
	child := i + 1
	if child >= len(t.Tokens) || t.Tokens[child].Start >= tok.End {
		// leaf: its text is exactly its own span
		return borrowed(tok.Start, tok.End), i + 1
	}

	var r rtext
	offset := tok.Start
	if offset < t.Tokens[child].Start {
		// plain text before the first child
		r = borrowed(offset, t.Tokens[child].Start)
		childEnd := t.Tokens[child].End
		cr, next := visit(t, child)
		r = r.add(cr, t.Input)
		offset = childEnd
		child = next
	} else {
		childEnd := t.Tokens[child].End
		r, child = visit(t, child)
		offset = childEnd
	}

	for child < len(t.Tokens) && t.Tokens[child].Start < tok.End {
		if offset < t.Tokens[child].Start {
			// plain text between children
			r = r.add(borrowed(offset, t.Tokens[child].Start), t.Input)
		}
		childEnd := t.Tokens[child].End
		cr, next := visit(t, child)
		r = r.add(cr, t.Input)
		offset = childEnd
		child = next
	}

	if offset < tok.End {
		// plain text after the last child
		r = r.add(borrowed(offset, tok.End), t.Input)
	}
	return r, child
}
