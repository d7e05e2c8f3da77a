package grammar

import "fmt"

// Verify checks that every rule reachable from start is defined and that
// no rule can recurse into itself without first consuming input (left
// recursion), which would make the matcher loop forever.
func Verify(g Grammar, start Rule) error {
	if int(start) < 0 || int(start) >= len(g) || g[start] == nil {
		return fmt.Errorf("start rule %d is not defined", int(start))
	}
	for r, e := range g {
		if e == nil {
			continue
		}
		if err := checkRefs(g, e); err != nil {
			return fmt.Errorf("rule %d: %w", r, err)
		}
	}

	nullable := nullableRules(g)

	// Walk the leftmost-call graph looking for a cycle.
	const (
		white = iota
		grey
		black
	)
	color := make([]int, len(g))
	var visit func(r Rule) error
	visit = func(r Rule) error {
		switch color[r] {
		case grey:
			return fmt.Errorf("rule %d is left-recursive", int(r))
		case black:
			return nil
		}
		color[r] = grey
		for _, callee := range leftRefs(g[r], nullable) {
			if err := visit(callee); err != nil {
				return err
			}
		}
		color[r] = black
		return nil
	}
	for r, e := range g {
		if e == nil {
			continue
		}
		if err := visit(Rule(r)); err != nil {
			return err
		}
	}
	return nil
}

func checkRefs(g Grammar, e Expr) error {
	switch e := e.(type) {
	case Ref:
		if int(e) < 0 || int(e) >= len(g) || g[e] == nil {
			return fmt.Errorf("reference to undefined rule %d", int(e))
		}
	case Seq:
		for _, sub := range e {
			if err := checkRefs(g, sub); err != nil {
				return err
			}
		}
	case Choice:
		for _, sub := range e {
			if err := checkRefs(g, sub); err != nil {
				return err
			}
		}
	case Star:
		return checkRefs(g, e.X)
	case Plus:
		return checkRefs(g, e.X)
	case Opt:
		return checkRefs(g, e.X)
	case Not:
		return checkRefs(g, e.X)
	}
	return nil
}

// nullableRules computes, as a fixpoint, which rules can match the empty
// string.
func nullableRules(g Grammar) []bool {
	nullable := make([]bool, len(g))
	for changed := true; changed; {
		changed = false
		for r, e := range g {
			if e == nil || nullable[r] {
				continue
			}
			if nullableExpr(e, nullable) {
				nullable[r] = true
				changed = true
			}
		}
	}
	return nullable
}

func nullableExpr(e Expr, nullable []bool) bool {
	switch e := e.(type) {
	case Lit:
		return len(e) == 0
	case Class, Any:
		return false
	case Ref:
		return nullable[e]
	case Seq:
		for _, sub := range e {
			if !nullableExpr(sub, nullable) {
				return false
			}
		}
		return true
	case Choice:
		for _, sub := range e {
			if nullableExpr(sub, nullable) {
				return true
			}
		}
		return false
	case Plus:
		return nullableExpr(e.X, nullable)
	case Star, Opt, Not, EOI:
		return true
	}
	return false
}

// leftRefs collects the rules that e may invoke before any input has
// necessarily been consumed.
func leftRefs(e Expr, nullable []bool) []Rule {
	var out []Rule
	collectLeftRefs(e, nullable, &out)
	return out
}

func collectLeftRefs(e Expr, nullable []bool, out *[]Rule) {
	switch e := e.(type) {
	case Ref:
		*out = append(*out, Rule(e))
	case Seq:
		for _, sub := range e {
			collectLeftRefs(sub, nullable, out)
			if !nullableExpr(sub, nullable) {
				return
			}
		}
	case Choice:
		for _, sub := range e {
			collectLeftRefs(sub, nullable, out)
		}
	case Star:
		collectLeftRefs(e.X, nullable, out)
	case Plus:
		collectLeftRefs(e.X, nullable, out)
	case Opt:
		collectLeftRefs(e.X, nullable, out)
	case Not:
		collectLeftRefs(e.X, nullable, out)
	}
}
