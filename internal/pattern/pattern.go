package pattern

import (
	"regexp"
	"sync"
)

// Kind classifies a grammar node.
type Kind int

const (
	Atomic Kind = iota
	Alternation
	Sequence
	Repetition
)

// Boundary names a character class that must not appear immediately before
// or after a match of the pattern carrying it. This is how "not adjacent to
// other word/hex characters" rules are enforced without lookbehind, which
// RE2 does not support.
type Boundary int

const (
	NoBoundary Boundary = iota
	WordBoundary
	DigitBoundary
	HexBoundary
	Base64Boundary
)

// Contains reports whether c belongs to the boundary's character class.
func (b Boundary) Contains(c byte) bool {
	switch b {
	case WordBoundary:
		return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	case DigitBoundary:
		return c >= '0' && c <= '9'
	case HexBoundary:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	case Base64Boundary:
		return c == '+' || c == '/' || c == '=' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return false
}

// Pattern is one immutable grammar node. Registered categories carry a
// unique name; intermediate nodes built by combinators may be anonymous.
type Pattern struct {
	name     string
	kind     Kind
	expr     string // RE2 fragment, always safe to embed in a group
	min      int    // minimum bytes any match consumes
	parts    []*Pattern
	boundary Boundary

	once     sync.Once
	anchored *regexp.Regexp
}

func (p *Pattern) Name() string       { return p.name }
func (p *Pattern) Kind() Kind         { return p.kind }
func (p *Pattern) Expr() string       { return p.expr }
func (p *Pattern) MinWidth() int      { return p.min }
func (p *Pattern) Boundary() Boundary { return p.boundary }

// Parts returns the constituent nodes of a composite pattern, in order.
func (p *Pattern) Parts() []*Pattern {
	out := make([]*Pattern, len(p.parts))
	copy(out, p.parts)
	return out
}

// Matcher returns the pattern compiled anchored at the start of its input,
// in leftmost-longest mode. Compilation happens once per node; fragments are
// valid by construction so compilation cannot fail.
func (p *Pattern) Matcher() *regexp.Regexp {
	p.once.Do(func() {
		re := regexp.MustCompile("^(?:" + p.expr + ")")
		re.Longest()
		p.anchored = re
	})
	return p.anchored
}

// Class builds an atomic pattern matching one byte from the given character
// class body (the text between [ and ] in RE2 syntax).
func Class(name, set string) *Pattern {
	return &Pattern{name: name, kind: Atomic, expr: "[" + set + "]", min: 1}
}

// Lit builds an atomic pattern matching the literal text exactly.
func Lit(name, text string) *Pattern {
	return &Pattern{name: name, kind: Atomic, expr: regexp.QuoteMeta(text), min: len(text)}
}

// Raw builds an atomic pattern from a caller-supplied RE2 fragment, e.g. a
// custom pattern typed on the command line. The fragment is compiled once up
// front so malformed input surfaces here rather than at scan time. The
// minimum width of raw patterns is unknown and conservatively reported as 0;
// the extraction engine protects itself against empty matches regardless.
func Raw(name, expr string) (*Pattern, error) {
	if _, err := regexp.Compile("^(?:" + expr + ")"); err != nil {
		return nil, err
	}
	return &Pattern{name: name, kind: Atomic, expr: "(?:" + expr + ")", min: 0}, nil
}

// Guard returns a copy of p carrying the given boundary class. The grammar
// is unchanged; only adjacency acceptance differs.
func Guard(p *Pattern, b Boundary) *Pattern {
	return &Pattern{name: p.name, kind: p.kind, expr: p.expr, min: p.min, parts: p.parts, boundary: b}
}

// Named returns a copy of p under a new name. Useful when two categories
// share one grammar (variable-name and function-name).
func Named(name string, p *Pattern) *Pattern {
	return &Pattern{name: name, kind: p.kind, expr: p.expr, min: p.min, parts: p.parts, boundary: p.boundary}
}
