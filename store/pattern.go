package store

import "github.com/coregx/tagrewrite/tagstring"

// SetCurrentPattern splits pattern into its fragment list and makes it
// the current pattern for fragment-position queries.
func (s *Store) SetCurrentPattern(pattern tagstring.String) {
	s.curPat = pattern
	s.hasCurPat = true
	s.fragments = SplitFragments(pattern)
	s.fragPos = make([]int32, len(s.fragments))
	s.ClearAllPatFragPos()
}

// UnrefCurrentPattern clears the current pattern.
func (s *Store) UnrefCurrentPattern() {
	s.curPat = nil
	s.hasCurPat = false
	s.fragments = nil
	s.fragPos = nil
}

// HasCurPat reports whether a current pattern is set.
func (s *Store) HasCurPat() bool {
	return s.hasCurPat
}

// CurPat returns the current pattern.
func (s *Store) CurPat() tagstring.String {
	return s.curPat
}

// NumFragments returns the number of fragments in the current pattern.
func (s *Store) NumFragments() int {
	return len(s.fragments)
}

// FragIsWildcard reports whether fragment i is a pinned-wildcard
// fragment (as opposed to a fixed literal fragment).
func (s *Store) FragIsWildcard(i int) bool {
	return s.fragments[i].Kind == FragmentPinnedWildcard
}

// FragStartInPat returns fragment i's starting index in the pattern.
func (s *Store) FragStartInPat(i int) int {
	return s.fragments[i].Start
}

// FragLengthInPat returns fragment i's length in the pattern, or -1 if
// it is a single pinned-wildcard character.
func (s *Store) FragLengthInPat(i int) int {
	f := s.fragments[i]
	if f.Kind == FragmentPinnedWildcard {
		return -1
	}
	return f.Length
}

// FragFirstCharInPat returns the first pattern character of fragment
// i, which for a pinned-wildcard fragment is the wildcard character
// itself.
func (s *Store) FragFirstCharInPat(i int) tagstring.Char {
	return s.curPat[s.fragments[i].Start]
}

func (s *Store) fragWildcardKind(i int) tagstring.Wildcard {
	return tagstring.Classify(s.curPat[s.fragments[i].Start])
}

// FragLengthInFromStr returns the length of fragment i's match in the
// from-string: always known for a fixed fragment, known only once its
// wildcard kind has captured something for a pinned-wildcard fragment.
func (s *Store) FragLengthInFromStr(i int) FragLen {
	f := s.fragments[i]
	if f.Kind == FragmentFixed {
		return KnownLen(f.Length)
	}
	capIx := s.captures.first(s.fragWildcardKind(i))
	if capIx == -1 {
		return FragLenNone
	}
	return KnownLen(s.captures.get(capIx).Length)
}

// FragFirstCharInFromStr returns the character to anchor a from-string
// search for fragment i on, and whether one exists. It returns false
// for an unmatched pinned-wildcard fragment or one whose capture is
// empty (there's no character to search for; placement of a
// zero-length fragment needs no search at all).
func (s *Store) FragFirstCharInFromStr(i int) (tagstring.Char, bool) {
	f := s.fragments[i]
	if f.Kind == FragmentFixed {
		if f.Length == 0 {
			return 0, false
		}
		return s.curPat[f.Start], true
	}

	capIx := s.captures.first(s.fragWildcardKind(i))
	if capIx == -1 {
		return 0, false
	}
	c := s.captures.get(capIx)
	if c.Length == 0 {
		return 0, false
	}
	return s.FromString()[c.Start], true
}

// fragmentContent returns the literal byte content fragment i must
// match: the pattern slice for a fixed fragment, or the first capture
// of its kind for a pinned-wildcard fragment.
func (s *Store) fragmentContent(i int) tagstring.String {
	f := s.fragments[i]
	if f.Kind == FragmentFixed {
		return s.curPat[f.Start : f.Start+f.Length]
	}
	capIx := s.captures.first(s.fragWildcardKind(i))
	c := s.captures.get(capIx)
	from := s.FromString()
	return from[c.Start : c.Start+c.Length]
}

// ClearAllPatFragPos marks every fragment's from-string position as
// unknown.
func (s *Store) ClearAllPatFragPos() {
	for i := range s.fragPos {
		s.fragPos[i] = noIndex
	}
}

// FragPos returns fragment i's recorded from-string position, or
// (0, false) if unknown.
func (s *Store) FragPos(i int) (int, bool) {
	p := s.fragPos[i]
	if p == noIndex {
		return 0, false
	}
	return int(p), true
}

func (s *Store) setFragPos(i, pos int) {
	s.fragPos[i] = int32(pos)
}

// CompareSubstringWithFragment reports whether from-string[ssStart,
// ssStart+ssLen) matches fragment fragIx's content.
//
// A fixed fragment's content comes from the pattern, where every
// unescaped character is tagged (program-file syntax), while ordinary
// from-string content is untagged user data; matching it is therefore
// by raw value only, tag bit ignored — otherwise a literal pattern
// like "cat" could never match plain input text "cat". A
// pinned-wildcard fragment's content comes from its first capture,
// which — being a unique wildcard kind — is always untagged
// (untagged-purity invariant), so comparing it tag-sensitively is both
// safe and required: it preserves that invariant against a from-string
// span that happens to share a raw value but carries a tag (e.g.
// program-inserted replacement text from an earlier pass).
func (s *Store) CompareSubstringWithFragment(ssStart, ssLen, fragIx int) bool {
	fl := s.FragLengthInFromStr(fragIx)
	if !fl.Has || fl.Len != ssLen {
		return false
	}
	from := s.FromString()
	if ssStart < 0 || ssLen < 0 || ssStart+ssLen > len(from) {
		return false
	}
	window := from[ssStart : ssStart+ssLen]
	content := s.fragmentContent(fragIx)
	if s.fragments[fragIx].Kind == FragmentFixed {
		return equalRaw(window, content)
	}
	return tagstring.Equal(window, content)
}

// equalRaw compares two strings ignoring each character's tag bit.
func equalRaw(a, b tagstring.String) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Raw() != b[i].Raw() {
			return false
		}
	}
	return true
}

// VerifyFragPos checks, without searching, whether fragment fragIx
// matches the from-string starting at pos, storing pos on success.
func (s *Store) VerifyFragPos(fragIx, pos int) bool {
	fl := s.FragLengthInFromStr(fragIx)
	if !fl.Has {
		return false
	}
	if !s.CompareSubstringWithFragment(pos, fl.Len, fragIx) {
		return false
	}
	s.setFragPos(fragIx, pos)
	return true
}

// AdvanceFragPos finds the next from-string position >= minPos at
// which fragment fragIx matches, using the first-/next-occurrence
// chains to jump between candidate positions of the fragment's
// leading character rather than scanning byte by byte. Stores the
// position and returns true on success.
func (s *Store) AdvanceFragPos(fragIx, minPos int) bool {
	fl := s.FragLengthInFromStr(fragIx)
	if !fl.Has {
		return false
	}

	firstChar, ok := s.FragFirstCharInFromStr(fragIx)
	if !ok {
		if fl.Len != 0 {
			return false
		}
		// Zero-length fragment: matches trivially at minPos, no anchor needed.
		if minPos < 0 || minPos > s.FromLen() {
			return false
		}
		s.setFragPos(fragIx, minPos)
		return true
	}

	pos := s.FirstOccurrence(firstChar)
	for pos != -1 && pos < minPos {
		pos = s.NextOccurrence(pos)
	}
	for pos != -1 {
		if s.CompareSubstringWithFragment(pos, fl.Len, fragIx) {
			s.setFragPos(fragIx, pos)
			return true
		}
		pos = s.NextOccurrence(pos)
	}
	return false
}
