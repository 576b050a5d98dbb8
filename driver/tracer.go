package driver

import (
	"fmt"
	"io"

	"github.com/coregx/tagrewrite/program"
	"github.com/coregx/tagrewrite/tagstring"
)

// Tracer receives step-by-step notifications from Run, mirroring the
// original interpreter's optional debug/verbose trace output (§6 "CLI
// and exit codes" names debug/verbose as external CLI concerns; Tracer
// is the core's side of that hook). The zero Tracer (nil) does nothing.
type Tracer interface {
	// Step is called once per rule attempt, before the quick-reject
	// check, naming the PC and the rule about to be tried.
	Step(pc int, rule *program.Rule)

	// Matched is called after a rule successfully matches and its
	// replacement has been built, with the from-string before the
	// swap and the to-string that will replace it. It is not called
	// for the terminator rule (PC 1), whose match ends the run.
	Matched(pc int, rule *program.Rule, from, to tagstring.String)
}

// WriterTracer writes a human-readable trace to W, in the
// tagstring.Format delimiter-choice style used elsewhere for
// diagnostics (§4.1 "Printing").
type WriterTracer struct {
	W io.Writer
}

func (t *WriterTracer) Step(pc int, rule *program.Rule) {
	fmt.Fprintf(t.W, "pc=%d line=%d pattern=", pc, rule.Line)
	tagstring.Format(t.W, rule.Pattern, 0)
	fmt.Fprintln(t.W)
}

func (t *WriterTracer) Matched(pc int, rule *program.Rule, from, to tagstring.String) {
	fmt.Fprintf(t.W, "pc=%d line=%d matched: ", pc, rule.Line)
	tagstring.Format(t.W, from, 0)
	fmt.Fprint(t.W, " -> ")
	tagstring.Format(t.W, to, 0)
	fmt.Fprintln(t.W)
}
