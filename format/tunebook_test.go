package format

import (
	"strings"
	"testing"
)

func TestCanonifyTunebook(t *testing.T) {
	input := strings.Join([]string{
		"A tune  collected somewhere.",
		"",
		"X:1",
		"T:Test  Tune",
		"% a comment line",
		"K:G",
		"abc   def|   % trailing comment",
		"%%staves 1 2",
		"A2  B2 |",
		"",
		"free   text again",
	}, "\n") + "\n"

	want := strings.Join([]string{
		"A tune  collected somewhere.",
		"",
		"X:1",
		"T:Test  Tune",
		"% a comment line",
		"K:G",
		"abc def| % trailing comment",
		"%%staves 1 2",
		"A2 B2 |",
		"",
		"free   text again",
	}, "\n") + "\n"

	got, warnings := CanonifyTunebook([]byte(input))
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if string(got) != want {
		t.Errorf("CanonifyTunebook mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCanonifyTunebook_KeepsBadLinesAndWarns(t *testing.T) {
	input := strings.Join([]string{
		"X:1",
		"K:C",
		"A2  B2",
		"aX9",
		"C2  D2",
	}, "\n")

	got, warnings := CanonifyTunebook([]byte(input))

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	w := warnings[0]
	if w.Line != 4 || w.Offset != 2 || w.Text != "aX9" {
		t.Errorf("warning = %+v, want line 4 offset 2 text aX9", w)
	}

	want := strings.Join([]string{
		"X:1",
		"K:C",
		"A2 B2",
		"aX9",
		"C2 D2",
	}, "\n")
	if string(got) != want {
		t.Errorf("CanonifyTunebook mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCanonifyTunebook_MusicNeedsTuneBody(t *testing.T) {
	// 'K:' only opens a tune body after an 'X:' field; elsewhere lines
	// stay untouched
	input := strings.Join([]string{
		"K:C",
		"A2   B2",
	}, "\n")

	got, warnings := CanonifyTunebook([]byte(input))
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if string(got) != input {
		t.Errorf("CanonifyTunebook rewrote free text\ngot:\n%s\nwant:\n%s", got, input)
	}
}

func TestCanonifyTunebook_BlankLineEndsTune(t *testing.T) {
	input := strings.Join([]string{
		"X:1",
		"K:C",
		"A2  B2",
		"",
		"A2  B2",
	}, "\n")

	got, _ := CanonifyTunebook([]byte(input))
	lines := strings.Split(string(got), "\n")
	if lines[2] != "A2 B2" {
		t.Errorf("line inside tune body = %q, want %q", lines[2], "A2 B2")
	}
	if lines[4] != "A2  B2" {
		t.Errorf("line after blank = %q, want it untouched", lines[4])
	}
}

func TestCanonifyTunebook_FieldsInsideBody(t *testing.T) {
	input := strings.Join([]string{
		"X:1",
		"K:C",
		"W:some  words",
		"A2  B2",
	}, "\n")

	got, _ := CanonifyTunebook([]byte(input))
	lines := strings.Split(string(got), "\n")
	if lines[2] != "W:some  words" {
		t.Errorf("field line = %q, want it untouched", lines[2])
	}
	if lines[3] != "A2 B2" {
		t.Errorf("music line = %q, want %q", lines[3], "A2 B2")
	}
}

func TestCanonifyTunebook_NoTrailingNewline(t *testing.T) {
	got, _ := CanonifyTunebook([]byte("X:1\nK:C\nA2  B2"))
	if want := "X:1\nK:C\nA2 B2"; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSplitOffComment(t *testing.T) {
	tests := []struct {
		line    string
		code    string
		comment string
	}{
		{"abc def", "abc def", ""},
		{"abc % hi", "abc", "% hi"},
		{"abc   % hi", "abc", "% hi"},
		{"% only", "", "% only"},
		{`abc \% literal`, `abc \% literal`, ""},
		{`a \%b % c`, `a \%b`, "% c"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			code, comment := SplitOffComment(tt.line)
			if code != tt.code || comment != tt.comment {
				t.Errorf("SplitOffComment(%q) = (%q, %q), want (%q, %q)",
					tt.line, code, comment, tt.code, tt.comment)
			}
		})
	}
}

func TestFieldType(t *testing.T) {
	tests := []struct {
		line string
		c    byte
		ok   bool
	}{
		{"K:G", 'K', true},
		{"w:lyrics", 'w', true},
		{"+:continued", '+', true},
		{"1:nope", 0, false},
		{"no colon", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		c, ok := fieldType(tt.line)
		if c != tt.c || ok != tt.ok {
			t.Errorf("fieldType(%q) = (%q, %v), want (%q, %v)", tt.line, c, ok, tt.c, tt.ok)
		}
	}
}

func TestIsCommentLine(t *testing.T) {
	if !isCommentLine("  % note") {
		t.Errorf("indented comment not detected")
	}
	if isCommentLine("abc % note") {
		t.Errorf("music with trailing comment misdetected as comment line")
	}
}
