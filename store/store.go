// Package store implements the working-string store (§4.3, component
// C3): the from/to buffer pair, the from-string index, the pattern
// fragment decomposition, the wildcard capture list, and the
// prefix/suffix bookkeeping the matcher and replacement builder share.
package store

import "github.com/coregx/tagrewrite/tagstring"

// FragLen is the length of a pattern fragment's matched span in the
// from-string. It is distinct from a plain int so that "not yet
// matched" cannot be confused with a legitimate zero-length match
// (e.g. a $ wildcard capturing the empty string) — see SPEC_FULL.md's
// Open Question decisions.
type FragLen struct {
	Len int
	Has bool
}

// FragLenNone represents an unmatched fragment.
var FragLenNone = FragLen{}

// KnownLen wraps a known length.
func KnownLen(n int) FragLen {
	return FragLen{Len: n, Has: true}
}

// Store owns one transformation's from/to buffers and all derived data
// over the current from-string and current pattern.
type Store struct {
	bufA, bufB tagstring.String
	fromIsA    bool

	idx index

	captures captureList

	curPat    tagstring.String
	hasCurPat bool
	fragments []Fragment
	fragPos   []int32 // position in from-string per fragment, or noIndex

	prefixLen   int
	suffixStart int
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		fromIsA:  true,
		idx:      newIndex(),
		captures: newCaptureList(),
	}
}

// SetFromString stores s as the current from-string and marks the
// index stale.
func (s *Store) SetFromString(str tagstring.String) {
	if s.fromIsA {
		s.bufA = str
	} else {
		s.bufB = str
	}
	s.idx.markStale()
}

// FromString returns the current from-string.
func (s *Store) FromString() tagstring.String {
	if s.fromIsA {
		return s.bufA
	}
	return s.bufB
}

// ToString returns the current to-string.
func (s *Store) ToString() tagstring.String {
	if s.fromIsA {
		return s.bufB
	}
	return s.bufA
}

// ClearToString empties the to-string in place, keeping its capacity.
func (s *Store) ClearToString() {
	if s.fromIsA {
		s.bufB = s.bufB[:0]
	} else {
		s.bufA = s.bufA[:0]
	}
}

// AppendCharToToString appends a single character to the to-string.
func (s *Store) AppendCharToToString(c tagstring.Char) {
	if s.fromIsA {
		s.bufB = append(s.bufB, c)
	} else {
		s.bufA = append(s.bufA, c)
	}
}

// AppendStringToToString appends str to the to-string.
func (s *Store) AppendStringToToString(str tagstring.String) {
	if s.fromIsA {
		s.bufB = append(s.bufB, str...)
	} else {
		s.bufA = append(s.bufA, str...)
	}
}

// AppendCaptureToToString appends the from-string substring captured
// by capture index ix to the to-string.
func (s *Store) AppendCaptureToToString(ix int) {
	c := s.captures.get(ix)
	from := s.FromString()
	s.AppendStringToToString(from[c.Start : c.Start+c.Length])
}

// Swap flips which buffer is the from-string. Clears captures, the
// fragment list, and the prefix/suffix span; marks the index stale.
// The buffers themselves are not copied.
func (s *Store) Swap() {
	s.fromIsA = !s.fromIsA
	s.captures.reset()
	s.UnrefCurrentPattern()
	s.ClearPrefixAndSuffix()
	s.idx.markStale()
}

// ClearFromString empties the from-string in place and marks the index
// stale.
func (s *Store) ClearFromString() {
	s.SetFromString(s.FromString()[:0])
}

// EnsureIndex rebuilds the from-string index if it is stale.
func (s *Store) EnsureIndex() {
	s.idx.ensure(s.FromString())
}

// QuickReject reports whether a pattern whose literal character set is
// patternLiterals can be ruled out against the current from-string
// without running the matcher.
func (s *Store) QuickReject(patternLiterals *tagstring.CharSet) bool {
	s.EnsureIndex()
	return s.idx.quickReject(patternLiterals)
}

// FirstOccurrence returns the from-string's smallest index holding c,
// or -1.
func (s *Store) FirstOccurrence(c tagstring.Char) int {
	s.EnsureIndex()
	return s.idx.firstOccurrence(c)
}

// NextOccurrence returns the from-string's next index > i holding the
// same character as i, or -1.
func (s *Store) NextOccurrence(i int) int {
	s.EnsureIndex()
	return s.idx.nextOccurrence(i)
}

// FromLen returns the length of the current from-string.
func (s *Store) FromLen() int {
	return len(s.FromString())
}

// RecordCapture stores a new wildcard capture and returns its index.
func (s *Store) RecordCapture(kind tagstring.Wildcard, start, length int) int {
	return s.captures.record(kind, start, length)
}

// UnmatchCaptures drops every capture whose end exceeds newLength.
func (s *Store) UnmatchCaptures(newLength int) {
	s.captures.unmatch(newLength)
}

// FirstCaptureOfKind returns the index of kind's first capture, or -1.
func (s *Store) FirstCaptureOfKind(kind tagstring.Wildcard) int {
	return s.captures.first(kind)
}

// GetCapture returns the capture at index ix.
func (s *Store) GetCapture(ix int) Capture {
	return s.captures.get(ix)
}

// NumCaptures returns the number of recorded captures.
func (s *Store) NumCaptures() int {
	return s.captures.len()
}
