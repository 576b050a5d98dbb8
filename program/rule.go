// Package program implements the in-memory rule list (§3 "Rule",
// "Program"; §4.2, component C2): each rule's pattern, replacement,
// precomputed literal-character set, and per-rule Aho-Corasick
// prefilter over its fixed fragments.
package program

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/tagrewrite/store"
	"github.com/coregx/tagrewrite/tagstring"
)

// Rule is one rewrite rule: a pattern, a replacement, the source line
// it was read from (diagnostics only), and derived data the driver
// uses to cheaply rule the rule out before invoking the matcher.
type Rule struct {
	Line        int
	Pattern     tagstring.String
	Replacement tagstring.String

	literals tagstring.CharSet

	// fixedFragments holds the pattern's fixed-fragment texts, used to
	// build the prefilter automaton (prefilter.go). Empty for an
	// all-wildcard pattern.
	fixedFragments []tagstring.String
	prefilter      *ahocorasick.Automaton
}

// NewRule builds a Rule, precomputing its literal-character set and,
// if it has at least one fixed fragment, a prefilter automaton.
func NewRule(line int, pattern, replacement tagstring.String) *Rule {
	r := &Rule{
		Line:        line,
		Pattern:     pattern,
		Replacement: replacement,
		literals:    literalCharSet(pattern),
	}

	for _, f := range store.SplitFragments(pattern) {
		if f.Kind != store.FragmentFixed {
			continue
		}
		r.fixedFragments = append(r.fixedFragments, pattern[f.Start:f.Start+f.Length])
	}
	r.prefilter = buildPrefilter(r.fixedFragments)

	return r
}

// literalCharSet returns the set of raw (untagged) values of every
// non-wildcard character in pattern. Pattern literal characters are
// always tagged, but they match from-string content by raw value only
// (see store.CompareSubstringWithFragment), so the quick-reject set
// must be keyed the same way the from-string's alphabet set is.
func literalCharSet(pattern tagstring.String) tagstring.CharSet {
	var cs tagstring.CharSet
	for _, c := range pattern {
		if tagstring.IsWildcard(c) {
			continue
		}
		cs.Set(tagstring.Plain(c.Raw()))
	}
	return cs
}

// Literals returns the rule's precomputed literal-character set, for
// the quick-reject test in store.Store.QuickReject.
func (r *Rule) Literals() *tagstring.CharSet {
	return &r.literals
}

// PassesPrefilter reports whether fromRaw (the from-string's raw byte
// view, see tagstring.RawBytes) contains at least one of the rule's
// fixed fragments. It does not check that every fragment occurs, so a
// pass is only a necessary condition for a match. A rule with no fixed
// fragments (a purely wildcard pattern) always passes: there's nothing
// to prefilter on.
func (r *Rule) PassesPrefilter(fromRaw []byte) bool {
	if r.prefilter == nil {
		return true
	}
	return r.prefilter.IsMatch(fromRaw)
}
