package store

// ClearPrefixAndSuffix resets the prefix/suffix span to "whole
// from-string is unmatched": no confirmed prefix, and the suffix
// starting point at the end of the from-string (so its length is 0).
func (s *Store) ClearPrefixAndSuffix() {
	s.prefixLen = 0
	s.suffixStart = s.FromLen()
}

// SetPrefixAndSuffix records the span of the from-string a successful
// match consumed: firstMatchIx is the from-string index where the
// matched region (wildcards included) begins, and lastMatchIx is the
// index just past its end. Bytes before firstMatchIx are the
// prefix; bytes at/after lastMatchIx are the suffix.
func (s *Store) SetPrefixAndSuffix(firstMatchIx, lastMatchIx int) {
	s.prefixLen = firstMatchIx
	s.suffixStart = lastMatchIx
}

// PrefixAndSuffix returns the from-string's unmatched leading span
// [0, prefixLen) and trailing span [suffixStart, FromLen()).
func (s *Store) PrefixAndSuffix() (prefixLen, suffixStart, suffixLen int) {
	return s.prefixLen, s.suffixStart, s.FromLen() - s.suffixStart
}
