// Package parse matches ABC music code against the tune-body grammar and
// records the result as a flat token trace.
package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/abcfmt/abc/grammar"
)

// SyntaxError reports that no rule chain covers the entire input as one
// tune line. Offset is the furthest byte offset any alternative reached
// before the parse failed as a whole.
type SyntaxError struct {
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d", e.Offset)
}

// Match parses input as one complete line of music code.
func Match(input string) (*Trace, error) {
	return MatchRule(input, grammar.MusicCodeLine)
}

// MatchRule parses input starting from the given rule. Unlike Match it
// does not require the rule to consume the whole input; the first token of
// the trace carries the extent of the match.
func MatchRule(input string, start grammar.Rule) (*Trace, error) {
	m := &matcher{
		input: input,
		memo:  make(map[memoKey]memoEntry),
	}
	toks, _, ok := m.rule(start, 0)
	if !ok {
		return nil, &SyntaxError{Offset: m.farthest}
	}
	return &Trace{Input: input, Tokens: toks}, nil
}

type memoKey struct {
	rule grammar.Rule
	pos  int
}

type memoEntry struct {
	ok   bool
	end  int
	toks []Token
}

type matcher struct {
	input    string
	memo     map[memoKey]memoEntry
	farthest int
}

func (m *matcher) fail(pos int) {
	if pos > m.farthest {
		m.farthest = pos
	}
}

// rule matches the named rule at pos and returns the preorder token trace
// of the match: the rule's own token first, descendants after it. Results
// are memoized per (rule, position); the memoized slices are only ever
// copied from, never appended to.
func (m *matcher) rule(r grammar.Rule, pos int) ([]Token, int, bool) {
	key := memoKey{rule: r, pos: pos}
	if e, hit := m.memo[key]; hit {
		if !e.ok {
			return nil, pos, false
		}
		return e.toks, e.end, true
	}
	toks := []Token{{Rule: r, Start: pos}}
	end, ok := m.match(grammar.ABC[r], pos, &toks)
	if !ok {
		m.memo[key] = memoEntry{}
		return nil, pos, false
	}
	toks[0].End = end
	m.memo[key] = memoEntry{ok: true, end: end, toks: toks}
	return toks, end, true
}

// match matches e at pos, appending any rule tokens to out. On failure it
// leaves out exactly as it found it.
func (m *matcher) match(e grammar.Expr, pos int, out *[]Token) (int, bool) {
	switch e := e.(type) {
	case grammar.Lit:
		if strings.HasPrefix(m.input[pos:], string(e)) {
			return pos + len(e), true
		}
		m.fail(pos)
		return pos, false

	case grammar.Class:
		if pos < len(m.input) {
			r, size := utf8.DecodeRuneInString(m.input[pos:])
			if e.Matches(r) {
				return pos + size, true
			}
		}
		m.fail(pos)
		return pos, false

	case grammar.Ref:
		toks, end, ok := m.rule(grammar.Rule(e), pos)
		if !ok {
			return pos, false
		}
		*out = append(*out, toks...)
		return end, true

	case grammar.Seq:
		mark := len(*out)
		p := pos
		for _, sub := range e {
			next, ok := m.match(sub, p, out)
			if !ok {
				*out = (*out)[:mark]
				return pos, false
			}
			p = next
		}
		return p, true

	case grammar.Choice:
		for _, alt := range e {
			if next, ok := m.match(alt, pos, out); ok {
				return next, true
			}
		}
		return pos, false

	case grammar.Star:
		p := pos
		for {
			mark := len(*out)
			next, ok := m.match(e.X, p, out)
			if !ok {
				break
			}
			if next == p {
				// zero-width match; stop rather than loop forever
				*out = (*out)[:mark]
				break
			}
			p = next
		}
		return p, true

	case grammar.Plus:
		p, ok := m.match(e.X, pos, out)
		if !ok {
			return pos, false
		}
		for {
			mark := len(*out)
			next, ok := m.match(e.X, p, out)
			if !ok {
				break
			}
			if next == p {
				*out = (*out)[:mark]
				break
			}
			p = next
		}
		return p, true

	case grammar.Opt:
		if next, ok := m.match(e.X, pos, out); ok {
			return next, true
		}
		return pos, true

	case grammar.Not:
		scratch := []Token(nil)
		if _, ok := m.match(e.X, pos, &scratch); ok {
			return pos, false
		}
		return pos, true

	case grammar.Any:
		if pos < len(m.input) {
			_, size := utf8.DecodeRuneInString(m.input[pos:])
			return pos + size, true
		}
		m.fail(pos)
		return pos, false

	case grammar.EOI:
		if pos == len(m.input) {
			return pos, true
		}
		m.fail(pos)
		return pos, false
	}
	return pos, false
}
