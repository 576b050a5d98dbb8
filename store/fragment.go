package store

import "github.com/coregx/tagrewrite/tagstring"

// FragmentKind distinguishes the two kinds of pattern fragment (§3,
// "Pattern fragment decomposition").
type FragmentKind int

const (
	// FragmentFixed is a maximal run of non-wildcard pattern characters.
	FragmentFixed FragmentKind = iota
	// FragmentPinnedWildcard is a single unique-kind wildcard occurrence
	// whose first occurrence already sits left of a fixed fragment, so
	// its captured substring (once known) can be searched for exactly
	// like a literal.
	FragmentPinnedWildcard
)

// Fragment is one element of a pattern's fragment decomposition.
// Start/Length always describe the fragment's extent in the *pattern*
// string; for FragmentPinnedWildcard, Length is always 1.
type Fragment struct {
	Kind   FragmentKind
	Start  int
	Length int
}

// SplitFragments decomposes pattern into its ordered fragment list,
// exactly per §4.3: a left-to-right scan tracking, per wildcard kind,
// whether it has been seen before (seenEver) and whether it is still
// "floating" (stillFloating) — i.e. hasn't yet been pinned by a
// following literal character. This is a pure function of pattern; it
// never consults a from-string.
func SplitFragments(pattern tagstring.String) []Fragment {
	var frags []Fragment
	var seenEver, stillFloating [tagstring.None + 1]bool

	litStart, litLen := -1, 0
	closeLiteral := func() {
		if litLen > 0 {
			frags = append(frags, Fragment{Kind: FragmentFixed, Start: litStart, Length: litLen})
		}
		litStart, litLen = -1, 0
	}

	for i, c := range pattern {
		w := tagstring.Classify(c)
		if w == tagstring.None {
			if litLen == 0 {
				litStart = i
			}
			litLen++
			for k := range stillFloating {
				stillFloating[k] = false
			}
			continue
		}

		closeLiteral()

		if w.IsUnique() && seenEver[w] && !stillFloating[w] {
			frags = append(frags, Fragment{Kind: FragmentPinnedWildcard, Start: i, Length: 1})
			continue
		}

		seenEver[w] = true
		stillFloating[w] = true
	}

	closeLiteral()
	return frags
}
