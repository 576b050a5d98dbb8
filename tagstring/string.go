package tagstring

// String is an ordered, mutable sequence of tagged characters: the
// working-string and pattern/replacement representation throughout the
// engine. It grows by append like any Go slice.
type String []Char

// FromTagged builds a String where every byte of s is tagged (literal).
func FromTagged(s string) String {
	out := make(String, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Tag(s[i])
	}
	return out
}

// FromPlain builds a String where every byte of s is untagged (user data).
func FromPlain(s string) String {
	out := make(String, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Plain(s[i])
	}
	return out
}

// Equal reports whether a and b hold byte-identical tagged characters.
func Equal(a, b String) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func Clone(s String) String {
	out := make(String, len(s))
	copy(out, s)
	return out
}

// RawBytes returns s's raw (untagged) byte values, discarding tag
// bits. Used wherever a tag-insensitive byte view is needed, such as
// feeding the Aho-Corasick literal prefilter (program/prefilter.go),
// which matches fixed pattern fragments against from-string content by
// value only.
func RawBytes(s String) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		out[i] = c.Raw()
	}
	return out
}
