package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/plucky/plucky/internal/pattern"
)

var (
	// ErrDuplicateName reports a second registration under an existing name.
	// This is a registry-construction error and fatal at startup.
	ErrDuplicateName = errors.New("duplicate pattern name")

	// ErrUnknownPattern reports a category name that was never registered,
	// or a malformed caller-supplied pattern.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Registry maps category names to patterns. Registration order is preserved
// and is the order Categories returns; it also decides tie-breaks when two
// selected categories produce equal-length matches at the same position.
type Registry struct {
	order  []string
	byName map[string]*pattern.Pattern
}

func New() *Registry {
	return &Registry{byName: map[string]*pattern.Pattern{}}
}

// Register adds a named pattern exactly once. Patterns that could match
// empty text are rejected: a zero-width category would stall the scan loop.
func (r *Registry) Register(p *pattern.Pattern) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("register: pattern has no name")
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateName)
	}
	if p.MinWidth() == 0 {
		return fmt.Errorf("register %q: pattern may match empty text", name)
	}
	r.byName[name] = p
	r.order = append(r.order, name)
	return nil
}

// Resolve returns the pattern registered under name.
func (r *Registry) Resolve(name string) (*pattern.Pattern, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Categories returns all registered names in registration order.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry of built-in categories. It is
// built on first use and read-only afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := New()
		for _, p := range builtins {
			if err := r.Register(p); err != nil {
				panic(err)
			}
		}
		defaultReg = r
	})
	return defaultReg
}
