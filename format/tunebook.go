package format

import (
	"strings"

	"github.com/dhamidi/abcfmt/abc/parse"
)

// Warning reports a music-code line that did not parse. The line is kept
// verbatim in the output.
type Warning struct {
	Line   int    // 1-based line number in the input
	Offset int    // byte offset of the failure within the music code
	Text   string // the music code that failed to parse
}

// CanonifyTunebook rewrites the music-code lines of an ABC file into their
// canonical form. Header fields, inline comments, comment-only lines,
// stylesheet directives and free text pass through unchanged. Music code
// appears inside a tune body, which starts at the first 'K:' field after
// an 'X:' field and ends at a blank line. Lines whose music code does not
// parse are kept verbatim and reported as warnings.
func CanonifyTunebook(src []byte) ([]byte, []Warning) {
	var (
		out      strings.Builder
		warnings []Warning
	)

	const (
		freeText = iota
		tuneHeader
		tuneBody
	)
	state := freeText

	lines := strings.Split(string(src), "\n")
	// a trailing newline yields one empty trailing element; drop it and
	// restore the newline at the end
	trailingNewline := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailingNewline = true
	}

	for n, raw := range lines {
		if n > 0 {
			out.WriteByte('\n')
		}
		line := strings.TrimSuffix(raw, "\r")

		switch {
		case strings.HasPrefix(line, "%%"):
			// stylesheet directive
			out.WriteString(raw)
			continue
		case isCommentLine(line):
			out.WriteString(raw)
			continue
		case strings.TrimSpace(line) == "":
			// blank line ends the tune
			state = freeText
			out.WriteString(raw)
			continue
		}

		code, comment := SplitOffComment(line)

		if field, ok := fieldType(code); ok {
			switch {
			case field == 'X' && state == freeText:
				state = tuneHeader
			case field == 'K' && state != freeText:
				state = tuneBody
			}
			out.WriteString(raw)
			continue
		}

		if state != tuneBody {
			// free text, or stray content in a tune header
			out.WriteString(raw)
			continue
		}

		canon, err := CanonifyMusicCode(code)
		if err != nil {
			offset := 0
			if se, ok := err.(*parse.SyntaxError); ok {
				offset = se.Offset
			}
			warnings = append(warnings, Warning{Line: n + 1, Offset: offset, Text: code})
			out.WriteString(raw)
			continue
		}
		out.WriteString(canon)
		if comment != "" {
			out.WriteByte(' ')
			out.WriteString(comment)
		}
	}

	if trailingNewline {
		out.WriteByte('\n')
	}
	return []byte(out.String()), warnings
}

// SplitOffComment splits a line on the comment character '%', allowing for
// escaping with '\%'. The comment, if any, includes the '%' itself;
// whitespace immediately before it belongs to neither part.
func SplitOffComment(line string) (code, comment string) {
	escaped := false
	for i := 0; i < len(line); i++ {
		switch {
		case escaped:
			escaped = false
		case line[i] == '\\':
			escaped = true
		case line[i] == '%':
			return strings.TrimRight(line[:i], " \t"), line[i:]
		}
	}
	return line, ""
}

// isCommentLine reports whether the line holds nothing but a comment.
func isCommentLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "%")
}

// fieldType reports whether the line is an information field such as "K:G"
// and returns its field letter. '+' marks a field continuation.
func fieldType(line string) (byte, bool) {
	if len(line) >= 2 && line[1] == ':' {
		c := line[0]
		if c == '+' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return c, true
		}
	}
	return 0, false
}
