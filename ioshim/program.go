package ioshim

import (
	"io"
	"strings"

	"github.com/coregx/tagrewrite/program"
	"github.com/coregx/tagrewrite/tagstring"
)

const backslash = '\\'

// ReadProgram parses program-file syntax (§6 "Program file syntax")
// from r: one rule per line, `<pattern> -> <replacement>`, each a
// delimited string using whatever printable character opens it.
// Faithful to original_source/instr.cpp's ReadAndAppendInstr and
// ReadTaggedString.
func ReadProgram(r io.Reader) (*program.Program, error) {
	lines, err := splitLines(r)
	if err != nil {
		return nil, err
	}

	var rules []*program.Rule
	for i, raw := range lines {
		lineNo := i + 1

		trimmed := skipWS(raw)
		if trimmed == "" || trimmed[0] == ';' {
			continue
		}

		pattern, rest, err := readDelimited(trimmed, lineNo)
		if err != nil {
			return nil, err
		}

		rest = skipWS(rest)
		if !strings.HasPrefix(rest, "->") {
			return nil, &SyntaxError{Line: lineNo, Msg: "expected '->' after pattern"}
		}
		rest = skipWS(rest[len("->"):])

		replacement, rest, err := readDelimited(rest, lineNo)
		if err != nil {
			return nil, err
		}
		_ = rest // trailing content on the line (e.g. a ';' comment) is ignored

		rules = append(rules, program.NewRule(lineNo, pattern, replacement))
	}

	return program.New(rules)
}

// skipWS strips leading spaces and tabs (tabs normalize to spaces, §6).
func skipWS(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

// readDelimited reads one delimited string starting at s[0] (the
// delimiter itself) and returns the decoded tagstring content plus
// whatever of s followed the closing delimiter.
func readDelimited(s string, lineNo int) (tagstring.String, string, error) {
	if s == "" {
		return nil, "", &SyntaxError{Line: lineNo, Msg: "expected a delimited string"}
	}

	delim := s[0]
	if delim < tagstring.FirstPrintingChar || delim > tagstring.LastPrintingChar {
		return nil, "", &SyntaxError{Line: lineNo, Msg: "delimiter is not a printable character"}
	}

	var out tagstring.String
	gotBackslash := false

	i := 1
	for {
		if i >= len(s) {
			return nil, "", &SyntaxError{Line: lineNo, Msg: "unterminated delimited string"}
		}

		c := s[i]
		if c == '\t' {
			c = ' '
		}

		switch {
		case c == delim:
			if gotBackslash {
				// A backslash immediately followed by the delimiter is
				// a syntax error, not an escaped delimiter (matches
				// original_source/instr.cpp's ReadTaggedString).
				return nil, "", &SyntaxError{Line: lineNo, Msg: "backslash before closing delimiter"}
			}
			return out, s[i+1:], nil

		case !gotBackslash && c == backslash:
			gotBackslash = true

		case c >= tagstring.FirstPrintingChar && c <= tagstring.LastPrintingChar:
			if gotBackslash {
				out = append(out, tagstring.Plain(c))
				gotBackslash = false
			} else {
				out = append(out, tagstring.Tag(c))
			}

		default:
			// Non-printing byte: silently dropped.
		}

		i++
	}
}
