package buildinfo

import "testing"

func TestString(t *testing.T) {
	Version, Commit, Date = "1.2.3", "abc", "2018-03-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	if got := String(); got != "customs 1.2.3 (commit=abc, date=2018-03-01)" {
		t.Fatalf("unexpected build string: %q", got)
	}
	if got := UserAgent(); got != "customs/1.2.3" {
		t.Fatalf("unexpected user agent: %q", got)
	}
}
