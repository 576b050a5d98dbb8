package matcher

import "github.com/coregx/tagrewrite/tagstring"

// unbounded is MaxWildcardSpan's sentinel for "any length, no fixed
// upper bound" (the range contains a variable-length wildcard).
const unbounded = -1

// minWildcardSpan counts the single-character wildcards in
// pat[from:to); variable-length wildcards contribute nothing, since
// they may match zero characters.
func minWildcardSpan(pat tagstring.String, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		if w := tagstring.Classify(pat[i]); w != tagstring.None && w.MatchesOneChar() {
			n++
		}
	}
	return n
}

// maxWildcardSpan counts the single-character wildcards in
// pat[from:to), returning unbounded the moment a variable-length
// wildcard appears anywhere in the range (its presence makes the
// range's maximum span unlimited, regardless of the single-character
// wildcards around it).
func maxWildcardSpan(pat tagstring.String, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		w := tagstring.Classify(pat[i])
		if w == tagstring.None {
			continue
		}
		if w.MatchesOneChar() {
			n++
		} else {
			return unbounded
		}
	}
	return n
}
