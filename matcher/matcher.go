// Package matcher implements the backtracking pattern matcher (§4.4,
// component C4): given a store's current pattern and from-string,
// either succeeds with a full set of wildcard captures and a
// prefix/suffix span, or fails with no-match.
package matcher

import (
	"github.com/coregx/tagrewrite/store"
	"github.com/coregx/tagrewrite/tagstring"
)

// Matcher runs the fragment-by-fragment, gap-filling search described
// in §4.4 against one Store.
type Matcher struct {
	store *store.Store
	stack []frame

	// MaxFrames caps the backtracking stack's depth. Zero (the
	// default) means unbounded, matching the host-memory-only limit
	// §5 documents. Exceeding a nonzero MaxFrames returns
	// ErrStackLimitExceeded from Match rather than growing further.
	MaxFrames int
}

// New returns a Matcher over s. s must already have a current pattern
// set (Store.SetCurrentPattern) before Match is called.
func New(s *store.Store) *Matcher {
	return &Matcher{store: s}
}

// push appends f to the backtracking stack, enforcing MaxFrames when
// it is set.
func (m *Matcher) push(f frame) error {
	if m.MaxFrames > 0 && len(m.stack) >= m.MaxFrames {
		return ErrStackLimitExceeded
	}
	m.stack = append(m.stack, f)
	return nil
}

// Match runs the search to completion. On success it records the
// prefix/suffix span and wildcard captures on the store and returns
// true. On ordinary no-match it returns false, nil. It returns
// ErrInvariant only if the matcher relied on a fact about its own
// state that turned out false — an internal invariant break, never an
// expected outcome — and ErrStackLimitExceeded when a nonzero MaxFrames
// is exceeded.
//
// A local failure anywhere in the search (a fragment that won't place,
// a wildcard window that won't validate) discards only the frame that
// hit it; the search backtracks to whatever frame is next on the
// stack. Overall no-match means the stack ran dry without a success.
func (m *Matcher) Match() (bool, error) {
	s := m.store
	pat := s.CurPat()
	n := s.NumFragments()

	m.stack = m.stack[:0]
	if err := m.push(frame{
		fragIx:     0,
		patFixedIx: fragPatBound(s, pat, 0, n),
		fsLeftIx:   -1,
	}); err != nil {
		return false, err
	}

	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		if !top.fixedIsMatched {
			if err := m.placeFragment(top); err != nil {
				return false, err
			}
			continue
		}

		if top.patWildIx < top.patFixedIx {
			if err := m.fillGapStep(top); err != nil {
				return false, err
			}
			continue
		}

		if top.fragIx == n {
			left := top.fsLeftIx
			if left < 0 {
				left = 0
			}
			s.SetPrefixAndSuffix(left, top.fsFixedIx)
			return true, nil
		}

		if err := m.advanceFrame(top); err != nil {
			return false, err
		}
	}

	return false, nil
}

// placeFragment performs the "place fragment" phase for f (§4.4
// "Placing fragments"). On success it pushes the continuation frame
// (and, where backtracking over fragment position applies, a sibling
// retry frame first so the deeper path is tried before it). On
// no-match it pushes nothing, letting the search fall back to
// whatever the stack holds next.
func (m *Matcher) placeFragment(f frame) error {
	s := m.store
	pat := s.CurPat()
	n := s.NumFragments()

	s.UnmatchCaptures(f.fsWildIx)

	switch {
	case n == 0:
		// Pure wildcard pattern: no fragments to anchor on at all.
		k := minWildcardSpan(pat, 0, len(pat))
		f.patWildIx = 0
		f.patFixedIx = len(pat)
		f.fsWildIx = 0
		if maxWildcardSpan(pat, 0, len(pat)) == unbounded {
			f.fsFixedIx = s.FromLen()
		} else {
			f.fsFixedIx = k
		}
		if f.fsFixedIx > s.FromLen() {
			return nil
		}
		f.fixedIsMatched = true
		f.fsWildEndIx = f.fsFixedIx
		return m.push(f)

	case f.fragIx == n:
		// Trailing gap: no more fragments, only a final wildcard run
		// (possibly empty) to account for against the rest of the
		// from-string.
		if maxWildcardSpan(pat, f.patWildIx, f.patFixedIx) == unbounded {
			f.fsFixedIx = s.FromLen()
		} else {
			f.fsFixedIx = f.fsWildIx + minWildcardSpan(pat, f.patWildIx, f.patFixedIx)
		}
		if f.fsFixedIx > s.FromLen() {
			return nil
		}
		f.fixedIsMatched = true
		f.fsWildEndIx = f.fsFixedIx
		return m.push(f)

	default:
		// The first fragment has no previous fragment to sit against, so
		// it is always searched for, even with an empty leading gap.
		noGap := f.fragIx > 0 && f.patWildIx == f.patFixedIx
		var ok bool
		if noGap {
			ok = s.VerifyFragPos(f.fragIx, f.fsFixedIx)
		} else {
			ok = s.AdvanceFragPos(f.fragIx, f.fsFixedIx)
		}
		if !ok {
			return nil
		}

		pos, has := s.FragPos(f.fragIx)
		if !has {
			return ErrInvariant
		}
		fl := s.FragLengthInFromStr(f.fragIx)
		if !fl.Has {
			return ErrInvariant
		}

		if f.fragIx+1 < n && pos+fl.Len < s.FromLen() {
			if err := m.push(frame{
				fragIx:     f.fragIx,
				patWildIx:  f.patWildIx,
				patFixedIx: f.patFixedIx,
				fsWildIx:   f.fsWildIx,
				fsFixedIx:  pos + 1,
				fsLeftIx:   f.fsLeftIx,
			}); err != nil {
				return err
			}
		}

		f.fsFixedIx = pos
		f.fixedIsMatched = true
		f.fsWildEndIx = f.fsFixedIx
		if f.fsLeftIx < 0 || pos < f.fsLeftIx {
			f.fsLeftIx = pos
		}

		if f.fragIx == 0 {
			if maxWildcardSpan(pat, 0, f.patFixedIx) == unbounded {
				f.fsWildIx = 0
			} else {
				f.fsWildIx = f.fsFixedIx - minWildcardSpan(pat, 0, f.patFixedIx)
			}
			if f.fsWildIx < 0 {
				return nil
			}
		}

		return m.push(f)
	}
}

// fillGapStep performs one wildcard's shrink/speculate/validate/advance
// cycle within the gap preceding f.fragIx (§4.4 "Filling a gap"). It
// pushes whatever continuation frames the step produces; it never
// returns them, since the shrink-sibling (if any) must be pushed
// before the deeper, greedy continuation so the greedy attempt is
// tried first.
func (m *Matcher) fillGapStep(f frame) error {
	s := m.store
	pat := s.CurPat()
	wk := tagstring.Classify(pat[f.patWildIx])
	isLast := f.patWildIx+1 == f.patFixedIx

	// 1. Shrink the window.
	if wk.MatchesOneChar() {
		if f.fsWildIx >= f.fsFixedIx {
			return nil
		}
		f.fsWildEndIx = f.fsWildIx + 1
	} else {
		remaining := minWildcardSpan(pat, f.patWildIx+1, f.patFixedIx)
		bound := f.fsFixedIx - remaining
		end := f.fsWildEndIx
		if end > bound {
			end = bound
		}
		if end < f.fsWildIx {
			end = f.fsWildIx
		}
		f.fsWildEndIx = end

		// 2. Speculate one byte smaller: the backtracking point that
		// makes variable-length wildcards greedy-then-shrink.
		if !isLast && f.fsWildEndIx > f.fsWildIx {
			shrink := f
			shrink.fsWildEndIx--
			if err := m.push(shrink); err != nil {
				return err
			}
		}
	}

	// 3. Validate.
	if isLast && f.fsWildEndIx != f.fsFixedIx {
		return nil
	}
	windowLen := f.fsWildEndIx - f.fsWildIx
	if wk.MatchesOneChar() && windowLen != 1 {
		return nil
	}

	from := s.FromString()
	if wk.MatchesOnlyUntagged() {
		for i := f.fsWildIx; i < f.fsWildEndIx; i++ {
			if from[i].IsTagged() {
				return nil
			}
		}
	}

	if wk.IsUnique() {
		if capIx := s.FirstCaptureOfKind(wk); capIx >= 0 {
			prior := s.GetCapture(capIx)
			if prior.Length != windowLen ||
				!tagstring.Equal(from[f.fsWildIx:f.fsWildEndIx], from[prior.Start:prior.Start+prior.Length]) {
				return nil
			}
		} else {
			s.RecordCapture(wk, f.fsWildIx, windowLen)
		}
	} else {
		s.RecordCapture(wk, f.fsWildIx, windowLen)
	}

	// 4. Advance within the gap.
	if f.fsLeftIx < 0 || f.fsWildIx < f.fsLeftIx {
		f.fsLeftIx = f.fsWildIx
	}
	f.patWildIx++
	f.fsWildIx = f.fsWildEndIx
	f.fsWildEndIx = f.fsFixedIx

	// 5. More wildcards in the gap, or move on to the next fragment.
	// When fragIx is already past the last fragment (the pure-wildcard
	// or trailing-gap case), there is no next fragment to advance
	// into: push f as-is, so the driver's success check sees the
	// now-empty gap directly.
	if f.patWildIx < f.patFixedIx || f.fragIx == s.NumFragments() {
		return m.push(f)
	}
	return m.advanceFrame(f)
}

// advanceFrame pushes the frame that starts placing the fragment after
// f.fragIx, bracketing its leading gap against the end of f's fragment
// (§4.4 "Filling a gap", step 5's fragment advance).
func (m *Matcher) advanceFrame(f frame) error {
	s := m.store
	pat := s.CurPat()
	n := s.NumFragments()

	fragLenInPat := s.FragLengthInPat(f.fragIx)
	if fragLenInPat < 0 {
		fragLenInPat = 1
	}
	fl := s.FragLengthInFromStr(f.fragIx)

	next := frame{
		fragIx:     f.fragIx + 1,
		patWildIx:  f.patFixedIx + fragLenInPat,
		fsWildIx:   f.fsFixedIx + fl.Len,
		fsLeftIx:   f.fsLeftIx,
	}
	next.patFixedIx = fragPatBound(s, pat, next.fragIx, n)
	next.fsFixedIx = next.fsWildIx

	return m.push(next)
}

// fragPatBound returns fragment fragIx's starting index in pat, or
// len(pat) once fragIx is past the last fragment (the trailing gap's
// right bracket).
func fragPatBound(s *store.Store, pat tagstring.String, fragIx, n int) int {
	if fragIx < n {
		return s.FragStartInPat(fragIx)
	}
	return len(pat)
}
