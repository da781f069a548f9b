package plucky

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/plucky/plucky/internal/registry"
)

func TestExitCode(t *testing.T) {
	if got := exitCode(fmt.Errorf("scan error: %w", registry.ErrUnknownPattern)); got != 1 {
		t.Errorf("caller error exit = %d, want 1", got)
	}
	if got := exitCode(errors.New("walk /x: permission denied")); got != 2 {
		t.Errorf("execution error exit = %d, want 2", got)
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"email-address", []string{"email-address"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "b"}},
	}
	for _, c := range cases {
		if got := splitNames(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitNames(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPickPrecedence(t *testing.T) {
	local := "from-local"
	global := "from-global"
	if got := pickString("from-cli", &local, &global); got != "from-cli" {
		t.Errorf("got %q", got)
	}
	if got := pickString("", &local, &global); got != "from-local" {
		t.Errorf("got %q", got)
	}
	if got := pickString("", nil, &global); got != "from-global" {
		t.Errorf("got %q", got)
	}
	if got := pickString("", nil, nil); got != "" {
		t.Errorf("got %q", got)
	}

	lt, gt := 3, 9
	if got := pickInt(0, &lt, &gt); got != 3 {
		t.Errorf("got %d", got)
	}
	if got := pickInt(5, &lt, &gt); got != 5 {
		t.Errorf("got %d", got)
	}

	lb := false
	if pickBool(false, &lb, nil) {
		t.Error("explicit local false overridden")
	}
	if !pickBool(true, &lb, nil) {
		t.Error("cli true lost")
	}
}
