package ioshim

import (
	"errors"
	"io"
	"strings"

	"github.com/coregx/tagrewrite/tagstring"
)

// Case is one unit-test pair: an input string and the output it must
// produce (§6 "Unit-test" input mode).
type Case struct {
	Input, Expected tagstring.String

	// LineNo is the input line's 1-based position in the source file,
	// for diagnostics.
	LineNo int
}

// ReadUnitTestCases parses unit-test mode (§6): lines alternate input,
// expected-output, input, expected-output...; lines starting with `;`
// are skipped between pairs and do not count toward the alternation.
func ReadUnitTestCases(r io.Reader) ([]Case, error) {
	lines, err := splitLines(r)
	if err != nil {
		return nil, err
	}

	type numbered struct {
		line string
		no   int
	}
	var significant []numbered
	for i, raw := range lines {
		if strings.HasPrefix(skipWS(raw), ";") {
			continue
		}
		significant = append(significant, numbered{raw, i + 1})
	}

	if len(significant)%2 != 0 {
		return nil, errors.New("ioshim: unit-test input has an unpaired trailing line")
	}

	cases := make([]Case, 0, len(significant)/2)
	for i := 0; i < len(significant); i += 2 {
		in, exp := significant[i], significant[i+1]
		cases = append(cases, Case{
			Input:    parseUnitTestLine(in.line),
			Expected: parseUnitTestLine(exp.line),
			LineNo:   in.no,
		})
	}
	return cases, nil
}

// parseUnitTestLine decodes one input or expected-output line:
// characters are untagged (plain user data) by default; a `\` escapes
// (tags) the following character; a bare `~` becomes a tagged `~`
// (§6). Tabs normalize to spaces like the program-file tokenizer.
func parseUnitTestLine(s string) tagstring.String {
	var out tagstring.String
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			c = ' '
		}

		switch {
		case escaped:
			if c >= tagstring.FirstPrintingChar && c <= tagstring.LastPrintingChar {
				out = append(out, tagstring.Tag(c))
			}
			escaped = false

		case c == backslash:
			escaped = true

		case c == '~':
			out = append(out, tagstring.Tag('~'))

		case c >= tagstring.FirstPrintingChar && c <= tagstring.LastPrintingChar:
			out = append(out, tagstring.Plain(c))
		}
	}
	return out
}

// CheckCase compares got against c.Expected byte-for-byte (tag
// included), returning MismatchError on any difference.
func CheckCase(c Case, got tagstring.String) error {
	if tagstring.Equal(c.Expected, got) {
		return nil
	}
	return &MismatchError{
		CaseLine: c.LineNo,
		Want:     string(tagstring.RawBytes(c.Expected)),
		Got:      string(tagstring.RawBytes(got)),
	}
}
