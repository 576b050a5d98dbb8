package store

import (
	"github.com/coregx/tagrewrite/internal/cpufeature"
	"github.com/coregx/tagrewrite/tagstring"
)

// index is the derived-data view over a from-string (§3, "Index over
// the from-string"): which characters occur, and the first-/next-
// occurrence chains that let the matcher jump straight to the next
// candidate position for a given fragment's leading character instead
// of scanning one byte at a time.
//
// Both the chains and the alphabet set are keyed by a character's raw
// (untagged) payload, not its full tagged value. A fixed fragment's
// pattern characters are always tagged (program-file syntax tags every
// unescaped character), while ordinary from-string content is
// untagged user data — so a literal pattern fragment must match a
// from-string span by byte VALUE regardless of tag (see
// store.CompareSubstringWithFragment and DESIGN.md). Keying the index
// by raw value lets one occurrence chain serve literal-fragment
// search directly; pinned-wildcard fragment search still lands on the
// right chain because a unique wildcard's captured content is always
// untagged (invariant: "untagged purity"), so its raw value is its
// full value.
type index struct {
	alphabet tagstring.CharSet
	first    [128]int32 // first[raw] = smallest index holding raw, or -1
	next     []int32    // next[i] = next index > i holding the same raw value as i, or -1

	stale bool
}

const noIndex int32 = -1

func newIndex() index {
	idx := index{stale: true}
	for i := range idx.first {
		idx.first[i] = noIndex
	}
	return idx
}

func (x *index) markStale() {
	x.stale = true
}

// ensure rebuilds the index from s if it is stale. The scan runs
// right-to-left, per §4.3: visiting position i last writes first[c]
// to the smallest index and chains next[i] to whatever position
// currently holds first[c] (i.e. the next occurrence to the right).
func (x *index) ensure(s tagstring.String) {
	if !x.stale {
		return
	}

	for i := range x.first {
		x.first[i] = noIndex
	}
	x.alphabet.Reset()

	n := len(s)
	if cap(x.next) < n {
		x.next = make([]int32, n)
	} else {
		x.next = x.next[:n]
	}

	if cpufeature.FastUnalignedWords() {
		buildIndexBlocked(s, x)
	} else {
		buildIndexScalar(s, x)
	}

	x.stale = false
}

// buildIndexScalar builds the index one byte at a time.
func buildIndexScalar(s tagstring.String, x *index) {
	for i := len(s) - 1; i >= 0; i-- {
		raw := s[i].Raw()
		x.next[i] = x.first[raw]
		x.first[raw] = int32(i)
		x.alphabet.Set(tagstring.Plain(raw))
	}
}

// buildIndexBlocked builds the index 8 bytes at a time where the host
// is expected to have a cheap unaligned-load memory pipeline (see
// internal/cpufeature). The chain construction is inherently
// sequential (each step depends on the previous first[c]), so blocking
// only amortizes loop-overhead and bounds-check cost across 8 bytes,
// not the dependency chain itself.
func buildIndexBlocked(s tagstring.String, x *index) {
	n := len(s)
	i := n - 1
	for ; i >= 7; i -= 8 {
		for j := i; j > i-8; j-- {
			raw := s[j].Raw()
			x.next[j] = x.first[raw]
			x.first[raw] = int32(j)
			x.alphabet.Set(tagstring.Plain(raw))
		}
	}
	for ; i >= 0; i-- {
		raw := s[i].Raw()
		x.next[i] = x.first[raw]
		x.first[raw] = int32(i)
		x.alphabet.Set(tagstring.Plain(raw))
	}
}

// quickReject reports whether pattern (identified by its precomputed
// literal CharSet) can be ruled out immediately: true means reject
// (cannot match), false means "maybe, run the matcher".
func (x *index) quickReject(patternLiterals *tagstring.CharSet) bool {
	return !patternLiterals.Subset(&x.alphabet)
}

// firstOccurrence returns the smallest index holding a character whose
// raw value matches c's, or -1.
func (x *index) firstOccurrence(c tagstring.Char) int {
	return int(x.first[c.Raw()])
}

// nextOccurrence returns the next index > i holding the same char as
// position i, or -1.
func (x *index) nextOccurrence(i int) int {
	return int(x.next[i])
}
