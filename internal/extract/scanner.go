package extract

import (
	"bytes"
	"io"

	"github.com/plucky/plucky/internal/pattern"
	"github.com/plucky/plucky/internal/types"
)

// Scanner produces the matches of one program over one input, lazily: each
// call to Next computes exactly one match. The position only moves forward;
// a Scanner cannot be restarted.
type Scanner struct {
	prog *Program
	data []byte

	cursor  int
	line    int // 1-based line at counted
	counted int // offset up to which newlines have been counted
}

// ScanBytes prepares a scan over data. The program may be shared by any
// number of concurrent scanners; the scanner itself is single-use.
func ScanBytes(prog *Program, data []byte) *Scanner {
	return &Scanner{prog: prog, data: data, line: 1}
}

// NewScanner buffers r fully and prepares a scan over it. Key blocks and
// encoded blobs cross line boundaries, so the input cannot be scanned a
// line at a time. Read errors surface here, before any match is produced.
func NewScanner(prog *Program, r io.Reader) (*Scanner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ScanBytes(prog, data), nil
}

// Next returns the next match and true, or a zero Match and false when the
// input is exhausted. Matches come out in strictly increasing start order
// and never overlap.
func (s *Scanner) Next() (types.Match, bool) {
	for s.cursor < len(s.data) {
		loc := s.prog.finder.FindIndex(s.data[s.cursor:])
		if loc == nil {
			s.cursor = len(s.data)
			break
		}
		start := s.cursor + loc[0]

		bestLen := 0
		bestCat := ""
		for _, alt := range s.prog.alts {
			m := alt.pat.Matcher().FindIndex(s.data[start:])
			if m == nil || m[1] == 0 {
				// zero-length attempts are rejected outright
				continue
			}
			if !boundaryOK(alt.pat.Boundary(), s.data, start, start+m[1]) {
				continue
			}
			if m[1] > bestLen {
				bestLen = m[1]
				bestCat = alt.category
			}
		}
		if bestLen == 0 {
			s.cursor = start + 1
			continue
		}

		s.line += bytes.Count(s.data[s.counted:start], []byte{'\n'})
		s.counted = start
		end := start + bestLen
		s.cursor = end
		return types.Match{
			Line:     s.line,
			Start:    start,
			End:      end,
			Text:     string(s.data[start:end]),
			Category: bestCat,
		}, true
	}
	return types.Match{}, false
}

// All drains the scanner. Convenience for callers that want the full result
// set; large inputs should pull via Next instead.
func (s *Scanner) All() []types.Match {
	var out []types.Match
	for {
		m, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// boundaryOK rejects a span whose immediate neighbor falls in the
// pattern's boundary class. End-of-input always passes.
func boundaryOK(b pattern.Boundary, data []byte, start, end int) bool {
	if b == pattern.NoBoundary {
		return true
	}
	if start > 0 && b.Contains(data[start-1]) {
		return false
	}
	if end < len(data) && b.Contains(data[end]) {
		return false
	}
	return true
}
