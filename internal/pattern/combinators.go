package pattern

import (
	"fmt"
	"strings"
)

// Union matches anything any constituent matches. Constituent order is
// significant: when two alternatives produce equal-length matches at the
// same position, the extraction engine prefers the earlier one.
func Union(name string, parts ...*Pattern) *Pattern {
	if len(parts) == 0 {
		panic("pattern: union of nothing")
	}
	exprs := make([]string, len(parts))
	min := parts[0].min
	for i, p := range parts {
		exprs[i] = p.expr
		if p.min < min {
			min = p.min
		}
	}
	return &Pattern{
		name:  name,
		kind:  Alternation,
		expr:  "(?:" + strings.Join(exprs, "|") + ")",
		min:   min,
		parts: parts,
	}
}

// Seq matches the constituents contiguously, in order.
func Seq(name string, parts ...*Pattern) *Pattern {
	if len(parts) == 0 {
		panic("pattern: sequence of nothing")
	}
	var b strings.Builder
	min := 0
	for _, p := range parts {
		b.WriteString("(?:")
		b.WriteString(p.expr)
		b.WriteString(")")
		min += p.min
	}
	return &Pattern{
		name:  name,
		kind:  Sequence,
		expr:  b.String(),
		min:   min,
		parts: parts,
	}
}

// Repeat matches between min and max contiguous occurrences of p.
// max < 0 means unbounded.
func Repeat(name string, p *Pattern, min, max int) *Pattern {
	if min < 0 || (max >= 0 && max < min) {
		panic(fmt.Sprintf("pattern: bad repetition bounds {%d,%d}", min, max))
	}
	var quant string
	switch {
	case max < 0 && min == 0:
		quant = "*"
	case max < 0 && min == 1:
		quant = "+"
	case max < 0:
		quant = fmt.Sprintf("{%d,}", min)
	case min == max:
		quant = fmt.Sprintf("{%d}", min)
	default:
		quant = fmt.Sprintf("{%d,%d}", min, max)
	}
	return &Pattern{
		name:  name,
		kind:  Repetition,
		expr:  "(?:" + p.expr + ")" + quant,
		min:   min * p.min,
		parts: []*Pattern{p},
	}
}

// Opt matches p or nothing. Opt nodes are always anonymous: a category that
// could match empty text is rejected at registration, so an optional only
// ever appears inside a wider sequence.
func Opt(p *Pattern) *Pattern {
	return Repeat("", p, 0, 1)
}
