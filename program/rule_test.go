package program

import (
	"testing"

	"github.com/coregx/tagrewrite/tagstring"
)

func TestNewRuleLiterals(t *testing.T) {
	pattern := tagstring.FromTagged("cat")
	r := NewRule(1, pattern, tagstring.FromTagged("dog"))

	lits := r.Literals()
	for _, c := range []byte("cat") {
		if !lits.Test(tagstring.Plain(c)) {
			t.Errorf("literal set missing %q", c)
		}
	}
	if lits.Test(tagstring.Plain('z')) {
		t.Errorf("literal set should not contain 'z'")
	}
}

func TestNewRuleLiteralsExcludeWildcards(t *testing.T) {
	pattern := append(tagstring.FromTagged("a"), tagstring.DS.Char())
	r := NewRule(1, pattern, tagstring.FromTagged("b"))

	lits := r.Literals()
	if lits.Test(tagstring.Plain('$')) {
		t.Errorf("literal set should not contain the wildcard's own payload byte")
	}
	if !lits.Test(tagstring.Plain('a')) {
		t.Errorf("literal set missing 'a'")
	}
}

func TestRulePassesPrefilterNoFixedFragments(t *testing.T) {
	pattern := tagstring.String{tagstring.Star.Char()}
	r := NewRule(1, pattern, tagstring.FromTagged("x"))

	if !r.PassesPrefilter([]byte("anything")) {
		t.Errorf("all-wildcard rule must always pass the prefilter")
	}
	if !r.PassesPrefilter(nil) {
		t.Errorf("all-wildcard rule must pass even against empty input")
	}
}

func TestRulePassesPrefilterWithFixedFragment(t *testing.T) {
	pattern := tagstring.FromTagged("cat")
	r := NewRule(1, pattern, tagstring.FromTagged("dog"))

	if !r.PassesPrefilter([]byte("a big cat nap")) {
		t.Errorf("expected prefilter to pass when fragment is present")
	}
	if r.PassesPrefilter([]byte("a big dog nap")) {
		t.Errorf("expected prefilter to reject when fragment is absent")
	}
}

func TestRulePassesPrefilterMultipleFragments(t *testing.T) {
	pattern := append(append(tagstring.FromTagged("ab"), tagstring.DS.Char()), tagstring.FromTagged("cd")...)
	r := NewRule(1, pattern, tagstring.FromTagged("x"))

	if !r.PassesPrefilter([]byte("xxabxxcdxx")) {
		t.Errorf("expected pass: both fragments present")
	}
	if !r.PassesPrefilter([]byte("xxabxxxx")) {
		t.Errorf("expected pass: one fragment present is enough")
	}
}
