package update

import "testing"

func TestIsNewer(t *testing.T) {
	cases := []struct {
		latest, current string
		want            bool
	}{
		{"1.1.0", "1.0.0", true},
		{"v1.1.0", "1.0.0", true},
		{"1.1.0", "v1.0.0", true},
		{"1.0.0", "1.0.0", false},
		{"0.9.0", "1.0.0", false},
		{"2.0.0-rc.1", "1.9.9", true},
		{"garbage", "1.0.0", false},
		{"1.0.0", "garbage", false},
		{"", "1.0.0", false},
	}
	for _, c := range cases {
		if got := IsNewer(c.latest, c.current); got != c.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", c.latest, c.current, got, c.want)
		}
	}
}

func TestCheckSkipsInCI(t *testing.T) {
	t.Setenv("CI", "1")
	latest, newer, err := Check("0.0.1", false)
	if err != nil || newer || latest != "" {
		t.Fatalf("got %q %v %v, want skip", latest, newer, err)
	}
}

func TestCheckSkipsOffline(t *testing.T) {
	t.Setenv("CI", "")
	latest, newer, err := Check("0.0.1", true)
	if err != nil || newer || latest != "" {
		t.Fatalf("got %q %v %v, want skip", latest, newer, err)
	}
}

func TestNormalize(t *testing.T) {
	if normalize(" v1.2.3 ") != "1.2.3" {
		t.Errorf("got %q", normalize(" v1.2.3 "))
	}
	if normalize("1.2.3") != "1.2.3" {
		t.Errorf("got %q", normalize("1.2.3"))
	}
}
