// Package driver implements the engine's driver loop (§4.6, component
// C6): iterates the rule list, invokes the matcher and replacement
// builder, and decides terminate-vs-continue.
package driver

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal statuses a run can end in (§6 "Error
// statuses surfaced by the core", §7 "Error handling design"). Local
// conditions (quick-reject, no-match) never escape Run; they only
// drive the loop's own PC advance.
var (
	// ErrNoMatchingTransforms is ERROR_NO_MATCHING_XFORMS: the scan
	// reached the end of the rule list without any rule having matched
	// since the last time found-any was cleared.
	ErrNoMatchingTransforms = errors.New("driver: no matching transforms")

	// ErrStartStepNoMatch is ERROR_START_STEP_NO_MATCH: the start rule
	// (PC 0) failed to match the initial from-string.
	ErrStartStepNoMatch = errors.New("driver: start rule did not match")

	// ErrStackEmpty is ERROR_STACK_EMPTY: the matcher's backtracking
	// stack emptied in a way the driver does not expect — an internal
	// invariant break, not an ordinary no-match — or grew past
	// Config.MaxStackFrames. Run reports it as a StackEmptyError, which
	// also wraps the matcher's own error.
	ErrStackEmpty = errors.New("driver: matcher invariant violated")
)

// NoMatchingTransformsError records the number of rules in the program
// the run gave up on.
type NoMatchingTransformsError struct {
	NumRules int
}

func (e *NoMatchingTransformsError) Error() string {
	return fmt.Sprintf("driver: no rule matched in a full pass over %d rules", e.NumRules)
}

func (e *NoMatchingTransformsError) Unwrap() error {
	return ErrNoMatchingTransforms
}

// StartStepNoMatchError names the from-string (truncated for
// diagnostics) the start rule failed against.
type StartStepNoMatchError struct {
	// FromPreview is a short raw-byte preview of the from-string at
	// the point of failure, for diagnostics only.
	FromPreview string
}

func (e *StartStepNoMatchError) Error() string {
	return fmt.Sprintf("driver: start rule did not match input %q", e.FromPreview)
}

func (e *StartStepNoMatchError) Unwrap() error {
	return ErrStartStepNoMatch
}

// ReplaceError wraps a replacement-builder failure (ERROR_REPLACE_STR_BAD_WILDCARD),
// naming the rule whose replacement referenced an absent wildcard kind.
type ReplaceError struct {
	Line int
	Err  error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("driver: rule at line %d: %v", e.Line, e.Err)
}

func (e *ReplaceError) Unwrap() error {
	return e.Err
}

// StackEmptyError wraps a matcher error (matcher.ErrInvariant or
// matcher.ErrStackLimitExceeded), naming the rule and PC active when it
// happened. It matches both ErrStackEmpty and that error under errors.Is.
type StackEmptyError struct {
	PC   int
	Line int
	Err  error
}

func (e *StackEmptyError) Error() string {
	return fmt.Sprintf("driver: matcher invariant violated at PC %d (rule line %d): %v", e.PC, e.Line, e.Err)
}

func (e *StackEmptyError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrStackEmpty, e.Err}
	}
	return []error{ErrStackEmpty}
}

// wrapMatcherErr turns a matcher-reported error into a StackEmptyError,
// preserving the chain back to the matcher's error.
func wrapMatcherErr(pc, line int, err error) error {
	return &StackEmptyError{PC: pc, Line: line, Err: err}
}

// wrapReplaceErr turns a replace-reported error into a ReplaceError,
// preserving the chain back to replace.ErrBadWildcard.
func wrapReplaceErr(line int, err error) error {
	return &ReplaceError{Line: line, Err: err}
}
