// Package grammar defines the parsing-expression pattern algebra and the
// ABC tune-body grammar matched by abc/parse.
//
// Patterns are immutable and built once at init time. Ordered choice,
// greedy repetition and lookahead carry PEG semantics: the first matching
// alternative of a Choice wins, Star and Plus never give back input once
// they have committed to a length, and Not matches without consuming.
package grammar

// Expr is a parsing expression. The concrete types below are the only
// implementations.
type Expr interface {
	expr()
}

// Lit matches a literal string byte-for-byte.
type Lit string

// CharRange is an inclusive range of runes.
type CharRange struct {
	Lo, Hi rune
}

// Class matches a single rune falling into any of its ranges.
type Class []CharRange

// Matches reports whether r falls into one of the class's ranges.
func (c Class) Matches(r rune) bool {
	for _, cr := range c {
		if r >= cr.Lo && r <= cr.Hi {
			return true
		}
	}
	return false
}

// Ref matches the named rule and records a token for it.
type Ref Rule

// Seq matches each element in order.
type Seq []Expr

// Choice tries each alternative in order and commits to the first match.
type Choice []Expr

// Star matches X zero or more times, greedily.
type Star struct{ X Expr }

// Plus matches X one or more times, greedily.
type Plus struct{ X Expr }

// Opt matches X or the empty string.
type Opt struct{ X Expr }

// Not is a negative lookahead: it succeeds without consuming input when X
// does not match.
type Not struct{ X Expr }

// Any matches any single rune.
type Any struct{}

// EOI matches only at the end of the input.
type EOI struct{}

func (Lit) expr()    {}
func (Class) expr()  {}
func (Ref) expr()    {}
func (Seq) expr()    {}
func (Choice) expr() {}
func (Star) expr()   {}
func (Plus) expr()   {}
func (Opt) expr()    {}
func (Not) expr()    {}
func (Any) expr()    {}
func (EOI) expr()    {}

// Grammar maps each Rule to its pattern, indexed by the rule's value.
type Grammar []Expr
