package parse

import "github.com/dhamidi/abcfmt/abc/grammar"

// Token records one successful rule match as a [Start, End) byte span of
// the input.
type Token struct {
	Rule  grammar.Rule
	Start int
	End   int
}

// Trace is the flat, time-ordered token sequence of one parse. Tokens
// appear in preorder: a rule's token immediately precedes the tokens of
// its descendants, every descendant's span nests inside its ancestor's
// span, and spans never partially overlap. Parent/child structure is
// recovered from that containment, not from pointers.
type Trace struct {
	Input  string
	Tokens []Token
}

// Text returns the input text covered by token i.
func (t *Trace) Text(i int) string {
	return t.Input[t.Tokens[i].Start:t.Tokens[i].End]
}

// Next returns the index just past token i's subtree. Because tokens are
// ordered by start offset, the subtree is exactly the run of following
// tokens whose start lies before token i's end.
func (t *Trace) Next(i int) int {
	end := t.Tokens[i].End
	j := i + 1
	for j < len(t.Tokens) && t.Tokens[j].Start < end {
		j++
	}
	return j
}

// Children returns the indices of token i's immediate children.
func (t *Trace) Children(i int) []int {
	var kids []int
	end := t.Tokens[i].End
	for j := i + 1; j < len(t.Tokens) && t.Tokens[j].Start < end; j = t.Next(j) {
		kids = append(kids, j)
	}
	return kids
}

// Roots returns the indices of the trace's top-level tokens. A complete
// Match produces a single root covering the whole input, possibly followed
// by a zero-width line-ending token.
func (t *Trace) Roots() []int {
	var roots []int
	for i := 0; i < len(t.Tokens); i = t.Next(i) {
		roots = append(roots, i)
	}
	return roots
}
