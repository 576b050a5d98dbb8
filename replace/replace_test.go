package replace

import (
	"errors"
	"testing"

	"github.com/coregx/tagrewrite/store"
	"github.com/coregx/tagrewrite/tagstring"
)

func newStoreWithCaptures(from string, prefixLen, suffixStart int, captures []store.Capture) *store.Store {
	s := store.New()
	s.SetFromString(tagstring.FromPlain(from))
	s.EnsureIndex()
	s.SetPrefixAndSuffix(prefixLen, suffixStart)
	for _, c := range captures {
		s.RecordCapture(c.Kind, c.Start, c.Length)
	}
	return s
}

func TestBuildLiteralReplacement(t *testing.T) {
	s := newStoreWithCaptures("xabcy", 1, 4, nil)
	if err := Build(s, tagstring.FromTagged("Z")); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := string(tagstring.RawBytes(s.ToString())); got != "xZy" {
		t.Errorf("got %q, want %q", got, "xZy")
	}
}

func TestBuildExpandsWildcard(t *testing.T) {
	s := newStoreWithCaptures("xaby", 1, 3, []store.Capture{
		{Kind: tagstring.DS, Start: 1, Length: 2},
	})
	var repl tagstring.String
	repl = append(repl, tagstring.DS.Char())
	if err := Build(s, repl); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := string(tagstring.RawBytes(s.ToString())); got != "xaby" {
		t.Errorf("got %q, want %q", got, "xaby")
	}
}

func TestBuildWrapsCursorAcrossRepeatedWildcard(t *testing.T) {
	s := newStoreWithCaptures("AB", 0, 2, []store.Capture{
		{Kind: tagstring.Star, Start: 0, Length: 1},
		{Kind: tagstring.Star, Start: 1, Length: 1},
	})
	var repl tagstring.String
	repl = append(repl, tagstring.Star.Char())
	repl = append(repl, tagstring.Star.Char())
	repl = append(repl, tagstring.Star.Char())
	if err := Build(s, repl); err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Three * in the replacement against two captures: A, B, wrap to A.
	if got := string(tagstring.RawBytes(s.ToString())); got != "ABA" {
		t.Errorf("got %q, want %q", got, "ABA")
	}
}

func TestBuildFailsOnAbsentWildcard(t *testing.T) {
	s := newStoreWithCaptures("ab", 0, 2, nil)
	var repl tagstring.String
	repl = append(repl, tagstring.DS.Char())

	err := Build(s, repl)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrBadWildcard) {
		t.Errorf("got %v, want ErrBadWildcard", err)
	}
}
