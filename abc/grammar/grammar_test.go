package grammar

import (
	"strings"
	"testing"
)

func TestABC_Verifies(t *testing.T) {
	if err := Verify(ABC, MusicCodeLine); err != nil {
		t.Fatalf("Verify(ABC, MusicCodeLine): %v", err)
	}
}

func TestABC_AllRulesDefined(t *testing.T) {
	if len(ABC) != NumRules {
		t.Fatalf("grammar has %d entries, want %d", len(ABC), NumRules)
	}
	for r := Rule(0); r < numRules; r++ {
		if ABC[r] == nil {
			t.Errorf("rule %s has no pattern", r)
		}
	}
}

func TestRuleNames_Unique(t *testing.T) {
	seen := make(map[string]Rule, NumRules)
	for r := Rule(0); r < numRules; r++ {
		name := r.String()
		if name == "" {
			t.Errorf("rule %d has no name", int(r))
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("rules %d and %d share the name %q", int(prev), int(r), name)
		}
		seen[name] = r
	}
	if Rule(-1).String() != "invalid" || numRules.String() != "invalid" {
		t.Errorf("out-of-range rules should print as invalid")
	}
}

func TestVerify_RejectsBadGrammars(t *testing.T) {
	tests := []struct {
		name    string
		g       Grammar
		start   Rule
		wantErr string
	}{
		{
			name:    "undefined start",
			g:       Grammar{nil},
			start:   0,
			wantErr: "not defined",
		},
		{
			name:    "start out of range",
			g:       Grammar{Lit("a")},
			start:   7,
			wantErr: "not defined",
		},
		{
			name:    "undefined reference",
			g:       Grammar{Ref(5)},
			start:   0,
			wantErr: "undefined rule 5",
		},
		{
			name:    "direct left recursion",
			g:       Grammar{Seq{Ref(0), Lit("a")}},
			start:   0,
			wantErr: "left-recursive",
		},
		{
			name: "left recursion through a nullable prefix",
			g: Grammar{
				0: Seq{Ref(1), Ref(0)},
				1: Star{X: Lit("a")},
			},
			start:   0,
			wantErr: "left-recursive",
		},
		{
			name: "indirect left recursion",
			g: Grammar{
				0: Ref(1),
				1: Choice{Lit("x"), Ref(0)},
			},
			start:   0,
			wantErr: "left-recursive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.g, tt.start)
			if err == nil {
				t.Fatalf("Verify succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Verify error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_AcceptsRightRecursion(t *testing.T) {
	// a = "x" a | "x"
	g := Grammar{Choice{Seq{Lit("x"), Ref(0)}, Lit("x")}}
	if err := Verify(g, 0); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestClass_Matches(t *testing.T) {
	c := Class{{Lo: 'A', Hi: 'G'}, {Lo: 'a', Hi: 'g'}}
	for _, r := range "AGcd" {
		if !c.Matches(r) {
			t.Errorf("Matches(%q) = false, want true", r)
		}
	}
	for _, r := range "Hz0 " {
		if c.Matches(r) {
			t.Errorf("Matches(%q) = true, want false", r)
		}
	}
}
