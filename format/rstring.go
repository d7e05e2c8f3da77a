package format

// rtext accumulates canonical output while walking a token trace. It is
// either a borrowed [start, end) span of the parsed input, meaning "emit
// these bytes unchanged", or an owned string holding rewritten text.
// Adding two adjacent borrowed spans extends the left span without
// allocating; any other combination materializes an owned string.
type rtext struct {
	start, end int
	s          string
	isOwned    bool
}

func borrowed(start, end int) rtext {
	return rtext{start: start, end: end}
}

func owned(s string) rtext {
	return rtext{s: s, isOwned: true}
}

func (r rtext) text(input string) string {
	if r.isOwned {
		return r.s
	}
	return input[r.start:r.end]
}

func (r rtext) add(o rtext, input string) rtext {
	if !r.isOwned && !o.isOwned && r.end == o.start {
		return borrowed(r.start, o.end)
	}
	return owned(r.text(input) + o.text(input))
}
