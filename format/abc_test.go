package format

import (
	"errors"
	"testing"

	"github.com/dhamidi/abcfmt/abc/parse"
)

func TestCanonifyMusicCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already canonical",
			input: "dcde d2c2|",
			want:  "dcde d2c2|",
		},
		{
			name:  "bars and single spaces untouched",
			input: "A2 B2 | C2 D2",
			want:  "A2 B2 | C2 D2",
		},
		{
			name:  "whitespace runs squashed",
			input: "A   B\t\t C",
			want:  "A B C",
		},
		{
			name:  "trailing newline stripped",
			input: "A2 B2 | C2 D2\n",
			want:  "A2 B2 | C2 D2",
		},
		{
			name:  "trailing crlf stripped",
			input: "abc\r\n",
			want:  "abc",
		},
		{
			name:  "chord newline marker rewritten",
			input: `"C\nG"A`,
			want:  `"C;G"A`,
		},
		{
			name:  "semicolon chord newline kept",
			input: `"C;G"A`,
			want:  `"C;G"A`,
		},
		{
			name:  "several chord newlines",
			input: `"C\nG\nD"A`,
			want:  `"C;G;D"A`,
		},
		{
			name:  "line continuation keeps backslash",
			input: "abc \\ \t",
			want:  "abc \\",
		},
		{
			name:  "trailing run squashed but kept without continuation",
			input: "abc   ",
			want:  "abc ",
		},
		{
			name:  "unmatched slur parses",
			input: "A(B",
			want:  "A(B",
		},
		{
			name:  "inline field and decorations",
			input: "[K:Dmix]  !trill!f  ~g",
			want:  "[K:Dmix] !trill!f ~g",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonifyMusicCode(tt.input)
			if err != nil {
				t.Fatalf("CanonifyMusicCode(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("CanonifyMusicCode(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// canonical form is a fixed point
			again, err := CanonifyMusicCode(got)
			if err != nil {
				t.Fatalf("CanonifyMusicCode(%q): %v", got, err)
			}
			if again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCanonifyMusicCode_SyntaxErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"aX9", 2},
		{"{ab", 3},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := CanonifyMusicCode(tt.input)
			if err == nil {
				t.Fatalf("CanonifyMusicCode(%q) succeeded, want error", tt.input)
			}
			var syntaxErr *parse.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error = %T, want *parse.SyntaxError", err)
			}
			if syntaxErr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", syntaxErr.Offset, tt.offset)
			}
		})
	}
}

func TestRtext_AdjacentBorrowedSpansMerge(t *testing.T) {
	const input = "abcdef"

	r := borrowed(0, 2).add(borrowed(2, 4), input)
	if r.isOwned {
		t.Errorf("adjacent borrowed spans should stay borrowed")
	}
	if got := r.text(input); got != "abcd" {
		t.Errorf("text = %q, want %q", got, "abcd")
	}

	r = borrowed(0, 2).add(borrowed(3, 4), input)
	if !r.isOwned {
		t.Errorf("non-adjacent spans must own their text")
	}
	if got := r.text(input); got != "abd" {
		t.Errorf("text = %q, want %q", got, "abd")
	}

	r = borrowed(0, 2).add(owned("X"), input)
	if got := r.text(input); got != "abX" {
		t.Errorf("text = %q, want %q", got, "abX")
	}
}
