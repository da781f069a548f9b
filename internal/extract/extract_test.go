package extract

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/plucky/plucky/internal/registry"
)

func mustCompile(t *testing.T, names []string, custom string) *Program {
	t.Helper()
	prog, err := Compile(registry.Default(), names, custom)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestOffsetsIndexInput(t *testing.T) {
	input := "mail a@b.io or call 555-867-5309, see https://x.dev/p today"
	prog := mustCompile(t, []string{"email-address", "phone-number", "url"}, "")
	ms := ScanBytes(prog, []byte(input)).All()
	if len(ms) == 0 {
		t.Fatal("no matches")
	}
	prev := -1
	for _, m := range ms {
		if m.Start <= prev {
			t.Errorf("starts not strictly increasing: %d after %d", m.Start, prev)
		}
		if input[m.Start:m.End] != m.Text {
			t.Errorf("offsets disagree with text: input[%d:%d] = %q, text %q",
				m.Start, m.End, input[m.Start:m.End], m.Text)
		}
		prev = m.End - 1
	}
}

func TestNoOverlap(t *testing.T) {
	// every category selected over busy input
	input := "v1.2.3 at 10.0.0.5, mail ops@example.com, hash 9e107d9d372bb6826bd81d3542a419d6"
	prog := mustCompile(t, nil, "")
	ms := ScanBytes(prog, []byte(input)).All()
	for i := 1; i < len(ms); i++ {
		if ms[i].Start < ms[i-1].End {
			t.Fatalf("overlap: %+v then %+v", ms[i-1], ms[i])
		}
	}
}

func TestDeterministic(t *testing.T) {
	input := "host www.example.com serves https://www.example.com/x for admin@example.com"
	prog := mustCompile(t, nil, "")
	a := ScanBytes(prog, []byte(input)).All()
	b := ScanBytes(prog, []byte(input)).All()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two scans differ:\n%v\n%v", a, b)
	}
}

func TestLineNumbers(t *testing.T) {
	input := "first 10.0.0.1\nsecond\nthird 10.0.0.3\n"
	prog := mustCompile(t, []string{"ipv4-address"}, "")
	ms := ScanBytes(prog, []byte(input)).All()
	if len(ms) != 2 {
		t.Fatalf("got %d matches", len(ms))
	}
	if ms[0].Line != 1 || ms[1].Line != 3 {
		t.Errorf("lines = %d, %d, want 1, 3", ms[0].Line, ms[1].Line)
	}
}

func TestTieGoesToRegistrationOrder(t *testing.T) {
	// word and variable-name both match all of "foo"; word is registered
	// first and wins regardless of the order the names were requested in.
	prog := mustCompile(t, []string{"variable-name", "word"}, "")
	ms := ScanBytes(prog, []byte("foo")).All()
	if len(ms) != 1 {
		t.Fatalf("got %d matches", len(ms))
	}
	if ms[0].Category != "word" {
		t.Errorf("category = %q, want word", ms[0].Category)
	}
}

func TestShortHexRunIsMD5NotSHA256(t *testing.T) {
	prog := mustCompile(t, []string{"md5", "sha256"}, "")
	ms := ScanBytes(prog, []byte("d41d8cd98f00b204e9800998ecf8427e")).All()
	if len(ms) != 1 {
		t.Fatalf("got %v", ms)
	}
	if ms[0].Category != "md5" || ms[0].End-ms[0].Start != 32 {
		t.Errorf("got %+v", ms[0])
	}
}

func TestLongestWinsAcrossCategories(t *testing.T) {
	// the domain reading is longer than the word reading at the same spot
	prog := mustCompile(t, []string{"word", "domain-name"}, "")
	ms := ScanBytes(prog, []byte("www.example.com")).All()
	if len(ms) != 1 || ms[0].Category != "domain-name" {
		t.Fatalf("got %v", ms)
	}
}

func TestWordRunStaysWhole(t *testing.T) {
	prog := mustCompile(t, []string{"word"}, "")
	ms := ScanBytes(prog, []byte("foobar123")).All()
	if len(ms) != 1 || ms[0].Text != "foobar123" {
		t.Fatalf("got %v", ms)
	}
}

func TestUnknownCategory(t *testing.T) {
	_, err := Compile(registry.Default(), []string{"no-such-thing"}, "")
	if !errors.Is(err, registry.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestEmptySelectionMeansAll(t *testing.T) {
	prog := mustCompile(t, nil, "")
	if got, want := len(prog.alts), len(registry.Default().Categories()); got < want {
		t.Errorf("alternatives = %d, want at least %d", got, want)
	}
}

func TestCustomPattern(t *testing.T) {
	prog := mustCompile(t, []string{"number"}, "dog[0-9]+")
	ms := ScanBytes(prog, []byte("x dog42 y")).All()
	if len(ms) != 1 {
		t.Fatalf("got %v", ms)
	}
	if ms[0].Category != CustomName || ms[0].Text != "dog42" {
		t.Errorf("got %+v", ms[0])
	}
}

func TestMalformedCustomPattern(t *testing.T) {
	_, err := Compile(registry.Default(), nil, "(")
	if !errors.Is(err, registry.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestZeroWidthCustomTerminates(t *testing.T) {
	prog := mustCompile(t, nil, "x*")
	ms := ScanBytes(prog, []byte("!!!")).All()
	if len(ms) != 0 {
		t.Fatalf("got %v, want none: empty attempts must not produce matches", ms)
	}
}

func TestScannerIsLazy(t *testing.T) {
	prog := mustCompile(t, []string{"ipv4-address"}, "")
	s := ScanBytes(prog, []byte("10.0.0.1 then 10.0.0.2"))
	m, ok := s.Next()
	if !ok || m.Text != "10.0.0.1" {
		t.Fatalf("first: %+v %v", m, ok)
	}
	m, ok = s.Next()
	if !ok || m.Text != "10.0.0.2" {
		t.Fatalf("second: %+v %v", m, ok)
	}
	if _, ok = s.Next(); ok {
		t.Fatal("scanner did not report exhaustion")
	}
}

func TestNewScannerReadsAll(t *testing.T) {
	prog := mustCompile(t, []string{"email-address"}, "")
	s, err := NewScanner(prog, strings.NewReader("to: a@example.com\n"))
	if err != nil {
		t.Fatal(err)
	}
	ms := s.All()
	if len(ms) != 1 || ms[0].Text != "a@example.com" {
		t.Fatalf("got %v", ms)
	}
}

func TestSelectionOrderIrrelevant(t *testing.T) {
	input := []byte("reach ops@example.com at 10.0.0.9")
	a := ScanBytes(mustCompile(t, []string{"email-address", "ipv4-address"}, ""), input).All()
	b := ScanBytes(mustCompile(t, []string{"ipv4-address", "email-address"}, ""), input).All()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("selection order changed results:\n%v\n%v", a, b)
	}
}
