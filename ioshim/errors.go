// Package ioshim implements the external I/O collaborators spec.md §1
// scopes out of the core (component C7): the program-file tokenizer,
// the input-file modes, end-of-line normalization, and the unit-test
// comparison harness. None of this package touches the matching
// engine directly; it only produces/consumes tagstring.String and
// program.Program values the core operates on.
package ioshim

import (
	"errors"
	"fmt"
)

// ErrSyntax is the program-file tokenizer's sentinel for a malformed
// rule line.
var ErrSyntax = errors.New("ioshim: program syntax error")

// SyntaxError names the line and what was expected.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ioshim: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// ErrUnsupportedMode is returned for the single-line (one-line-at-a-time)
// CLI mode, which the original declares as a CmdMode_t value but never
// wires through its own driver loop either (§9 Open Questions). Rather
// than silently behave as whole-file, this mode is explicitly rejected.
var ErrUnsupportedMode = errors.New("ioshim: single-line input mode is not supported")

// ErrDoesntMatchExpected is the unit-test harness's ERROR_DOESNT_MATCH_EXPECTED.
var ErrDoesntMatchExpected = errors.New("ioshim: output doesn't match expected")

// MismatchError names the unit-test case (by its input line number) and
// the expected vs actual raw-byte output.
type MismatchError struct {
	CaseLine int
	Want     string
	Got      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("ioshim: case at line %d: got %q, want %q", e.CaseLine, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrDoesntMatchExpected
}
