package ioshim

import (
	"io"

	"github.com/coregx/tagrewrite/tagstring"
)

// ReadWholeFile implements whole-file input mode (§6): the entire
// reader's content becomes one tagged string, with every character
// untagged (plain user data) except each end-of-line sequence, which
// becomes a single tagged `~`.
func ReadWholeFile(r io.Reader) (tagstring.String, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return rawToTagged(data), nil
}

// ReadImmediate implements immediate input mode (§6): a string
// supplied directly (originally routed through a temporary file and
// read back via the whole-file path; here it's just that same
// conversion applied in memory).
func ReadImmediate(s string) tagstring.String {
	return rawToTagged([]byte(s))
}

// rawToTagged applies whole-file/immediate mode's end-of-line
// normalization: any \n, \r, \n\r, or \r\n becomes one tagged `~`;
// every other printable byte becomes untagged (plain); non-printing
// bytes are dropped.
func rawToTagged(data []byte) tagstring.String {
	var out tagstring.String
	i := 0
	for i < len(data) {
		c := data[i]
		if c == '\n' || c == '\r' {
			out = append(out, tagstring.Tag('~'))
			comp := byte('\r')
			if c == '\r' {
				comp = '\n'
			}
			i++
			if i < len(data) && data[i] == comp {
				i++
			}
			continue
		}
		if c >= tagstring.FirstPrintingChar && c <= tagstring.LastPrintingChar {
			out = append(out, tagstring.Plain(c))
		}
		i++
	}
	return out
}

// WriteOutput renders s for external display (§6 "On output..."):
// tagged `~` becomes a line break; any other tagged character is
// preceded by a backslash; untagged characters are written as-is.
func WriteOutput(w io.Writer, s tagstring.String) error {
	for _, c := range s {
		var err error
		switch {
		case c.IsTagged() && c.Raw() == '~':
			_, err = io.WriteString(w, "\n")
		case c.IsTagged():
			_, err = w.Write([]byte{'\\', c.Raw()})
		default:
			_, err = w.Write([]byte{c.Raw()})
		}
		if err != nil {
			return err
		}
	}
	return nil
}
