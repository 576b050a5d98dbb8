// Package replace implements the replacement builder (§4.5, component
// C5): given a successful match, writes prefix + replacement-with-
// wildcard-expansion + suffix into the store's to-string.
package replace

import (
	"errors"
	"fmt"

	"github.com/coregx/tagrewrite/store"
	"github.com/coregx/tagrewrite/tagstring"
)

// ErrBadWildcard is returned when a replacement references a wildcard
// kind that never appeared in the pattern, so it has no captures to
// draw from.
var ErrBadWildcard = errors.New("replace: wildcard kind absent from pattern")

// BadWildcardError names the offending kind.
type BadWildcardError struct {
	Kind tagstring.Wildcard
}

func (e *BadWildcardError) Error() string {
	return fmt.Sprintf("replace: wildcard %q has no captures in this pattern", e.Kind.Char().Raw())
}

func (e *BadWildcardError) Unwrap() error {
	return ErrBadWildcard
}

// Build writes the new to-string for a successful match: the prefix,
// the replacement pattern with each wildcard expanded to a captured
// substring, and the suffix. The per-kind capture cursor starts at -1
// and advances (with wraparound) each time its kind is seen in the
// replacement, so repeated wildcards of the same kind cycle through
// that kind's captures in left-to-right order.
func Build(s *store.Store, replacement tagstring.String) error {
	s.ClearToString()

	prefixLen, suffixStart, _ := s.PrefixAndSuffix()
	from := s.FromString()
	s.AppendStringToToString(from[:prefixLen])

	var cursor [tagstring.None + 1]int
	for k := range cursor {
		cursor[k] = -1
	}

	for _, c := range replacement {
		kind := tagstring.Classify(c)
		if kind == tagstring.None {
			s.AppendCharToToString(c)
			continue
		}

		ix, err := nextCapture(s, kind, &cursor[kind])
		if err != nil {
			return err
		}
		s.AppendCaptureToToString(ix)
	}

	s.AppendStringToToString(from[suffixStart:])
	return nil
}

// nextCapture advances cursor to the next capture index of kind,
// wrapping past the end of that kind's captures, and returns it. It
// fails only when kind has no captures at all.
func nextCapture(s *store.Store, kind tagstring.Wildcard, cursor *int) (int, error) {
	first := s.FirstCaptureOfKind(kind)
	if first < 0 {
		return 0, &BadWildcardError{Kind: kind}
	}

	n := s.NumCaptures()
	start := *cursor + 1
	if start < 0 {
		start = 0
	}

	for i := start; i < n; i++ {
		if s.GetCapture(i).Kind == kind {
			*cursor = i
			return i, nil
		}
	}
	// Wrapped past the end: resume the scan from the very first capture.
	for i := 0; i < start && i < n; i++ {
		if s.GetCapture(i).Kind == kind {
			*cursor = i
			return i, nil
		}
	}
	return 0, &BadWildcardError{Kind: kind}
}
