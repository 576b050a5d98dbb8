package program

import (
	"testing"

	"github.com/coregx/tagrewrite/tagstring"
)

func TestBuildPrefilterEmpty(t *testing.T) {
	if auto := buildPrefilter(nil); auto != nil {
		t.Errorf("expected nil automaton for no fragments, got %v", auto)
	}
}

func TestBuildPrefilterSingleFragment(t *testing.T) {
	auto := buildPrefilter([]tagstring.String{tagstring.FromTagged("cat")})
	if auto == nil {
		t.Fatal("expected non-nil automaton")
	}
	if !auto.IsMatch([]byte("a cat nap")) {
		t.Errorf("expected match")
	}
	if auto.IsMatch([]byte("a dog nap")) {
		t.Errorf("expected no match")
	}
}

func TestBuildPrefilterMultipleFragmentsMatchesAny(t *testing.T) {
	auto := buildPrefilter([]tagstring.String{
		tagstring.FromTagged("ab"),
		tagstring.FromTagged("cd"),
	})
	if auto == nil {
		t.Fatal("expected non-nil automaton")
	}
	// IsMatch proves "at least one fragment occurs", not "all occur" -
	// the driver treats that as a necessary, not sufficient, condition.
	if !auto.IsMatch([]byte("xxabxx")) {
		t.Errorf("expected match on first fragment alone")
	}
	if auto.IsMatch([]byte("xxxxxx")) {
		t.Errorf("expected no match when neither fragment present")
	}
}
