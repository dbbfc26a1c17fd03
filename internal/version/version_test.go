package version

import (
	"strings"
	"testing"
)

func TestResolveAlwaysHasVersion(t *testing.T) {
	t.Parallel()

	if info := Resolve(); info.Version == "" {
		t.Fatal("Resolve returned an empty version")
	}
}

func TestStringIncludesVersion(t *testing.T) {
	t.Parallel()

	if got := String(); !strings.Contains(got, Resolve().Version) {
		t.Fatalf("String() = %q, missing version", got)
	}
}

func TestShortCommit(t *testing.T) {
	t.Parallel()

	if got := shortCommit("abcdef0123456789abcdef"); got != "abcdef012345" {
		t.Fatalf("got %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}
