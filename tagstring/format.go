package tagstring

import (
	"fmt"
	"io"
)

// delimiter candidates, tried in order; the first not used by the string
// in either tagged or untagged form wins, else DefaultDelim.
const (
	DoubleQuote = '"'
	SingleQuote = '\''
	Bar         = '|'
	Backslash   = '\\'
	DefaultDelim = DoubleQuote
)

// delimUsed reports whether delim (as a plain byte) occurs in s in
// either tagged or untagged form.
func delimUsed(used *CharSet, delim byte) bool {
	return used.Test(Plain(delim)) || used.Test(Tag(delim))
}

// chooseDelim picks a print delimiter for s: the first of " ' | that
// does not occur in s, falling back to DefaultDelim if all three do.
func chooseDelim(s String) byte {
	used := CharsUsed(s)
	for _, d := range [...]byte{DoubleQuote, SingleQuote, Bar} {
		if !delimUsed(&used, d) {
			return d
		}
	}
	return DefaultDelim
}

// Format writes s to out, delimited, with untagged characters preceded
// by a backslash and tagged characters written as their raw byte. At
// most maxLength characters are written; if s is longer, "..." is
// appended after the closing delimiter. maxLength <= 0 means unbounded.
func Format(out io.Writer, s String, maxLength int) {
	delim := chooseDelim(s)
	fmt.Fprintf(out, "%c", delim)

	n := len(s)
	if maxLength > 0 && maxLength < n {
		n = maxLength
	}
	for i := 0; i < n; i++ {
		c := s[i]
		if !c.IsTagged() {
			out.Write([]byte{Backslash})
		}
		out.Write([]byte{c.Raw()})
	}

	fmt.Fprintf(out, "%c", delim)
	if maxLength > 0 && maxLength < len(s) {
		io.WriteString(out, "...")
	}
}

// FormatChar returns a debugging representation of s[ix]: "'c'" for a
// tagged character, "'\c'" for untagged, or "?" if ix is out of range.
func FormatChar(s String, ix int) string {
	if ix < 0 || ix >= len(s) {
		return "?"
	}
	c := s[ix]
	if !c.IsTagged() {
		return fmt.Sprintf("'\\%c'", c.Raw())
	}
	return fmt.Sprintf("'%c'", c.Raw())
}
