package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plucky/plucky/internal/pattern"
	"github.com/plucky/plucky/internal/registry"
)

// CustomName tags matches of a caller-supplied ad-hoc pattern.
const CustomName = "custom"

// alternative is one matchable unit: a leaf pattern plus the top-level
// category it reports under. Union categories are flattened so each
// constituent keeps its own boundary rule.
type alternative struct {
	category string
	pat      *pattern.Pattern
}

// Program is a compiled selection, read-only for the duration of any number
// of scans.
type Program struct {
	alts []alternative

	// finder locates the next candidate position; it is the plain union of
	// every selected pattern, unanchored.
	finder *regexp.Regexp
}

// Compile resolves a set of category names against reg into a single scan
// program. An empty selection means every registered category. Alternatives
// are ordered by registration order regardless of the order names were
// requested in. A non-empty custom pattern is unioned in as one extra
// alternative; a malformed one is a caller error and reports
// registry.ErrUnknownPattern.
func Compile(reg *registry.Registry, names []string, custom string) (*Program, error) {
	selected := names
	if len(selected) == 0 {
		selected = reg.Categories()
	} else {
		requested := make(map[string]bool, len(selected))
		for _, n := range selected {
			if _, err := reg.Resolve(n); err != nil {
				return nil, err
			}
			requested[n] = true
		}
		selected = selected[:0:0]
		for _, n := range reg.Categories() {
			if requested[n] {
				selected = append(selected, n)
			}
		}
	}

	p := &Program{}
	var exprs []string
	for _, name := range selected {
		top, err := reg.Resolve(name)
		if err != nil {
			return nil, err
		}
		for _, leaf := range flatten(top) {
			p.alts = append(p.alts, alternative{category: name, pat: leaf})
		}
		exprs = append(exprs, top.Expr())
	}

	if custom != "" {
		cp, err := pattern.Raw(CustomName, custom)
		if err != nil {
			return nil, fmt.Errorf("custom pattern %q: %v: %w", custom, err, registry.ErrUnknownPattern)
		}
		p.alts = append(p.alts, alternative{category: CustomName, pat: cp})
		exprs = append(exprs, cp.Expr())
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("empty selection: %w", registry.ErrUnknownPattern)
	}

	finder, err := regexp.Compile(strings.Join(exprs, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile selection: %w", err)
	}
	p.finder = finder
	return p, nil
}

// flatten expands a union of named constituents into its leaves so each
// keeps its own boundary class. Unions over anonymous parts (like the ipv6
// alternatives) stay whole: their boundary lives on the wrapper.
func flatten(p *pattern.Pattern) []*pattern.Pattern {
	if p.Kind() != pattern.Alternation || p.Boundary() != pattern.NoBoundary {
		return []*pattern.Pattern{p}
	}
	parts := p.Parts()
	for _, q := range parts {
		if q.Name() == "" {
			return []*pattern.Pattern{p}
		}
	}
	var out []*pattern.Pattern
	for _, q := range parts {
		out = append(out, flatten(q)...)
	}
	return out
}
