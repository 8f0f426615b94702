package parser

import "sort"

// span is a half-open byte range [start, end) of the raw input.
type span struct {
	start int
	end   int
}

// claims is the set of ranges already taken by earlier extraction passes.
// Passes never edit the input; they consult claims so every offset stays
// relative to the original text.
type claims struct {
	spans []span
}

func (c *claims) overlaps(start, end int) bool {
	for _, s := range c.spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// claim records [start, end) and reports false if it overlaps an existing claim.
func (c *claims) claim(start, end int) bool {
	if start >= end || c.overlaps(start, end) {
		return false
	}
	c.spans = append(c.spans, span{start: start, end: end})
	return true
}

// sorted returns the claimed ranges ordered by start.
func (c *claims) sorted() []span {
	out := append([]span(nil), c.spans...)
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}
