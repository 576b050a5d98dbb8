package driver

import (
	"strings"

	"github.com/coregx/tagrewrite/matcher"
	"github.com/coregx/tagrewrite/program"
	"github.com/coregx/tagrewrite/replace"
	"github.com/coregx/tagrewrite/store"
	"github.com/coregx/tagrewrite/tagstring"
)

// Driver runs one program to completion over one working-string store
// (§4.6, component C6). It owns no state across calls to Run beyond
// the Config and optional Tracer; the store and matcher own the
// per-run state.
type Driver struct {
	Config Config
	Tracer Tracer
}

// New returns a Driver with the given config. A zero Config behaves
// like DefaultConfig (both fields zero mean "unbounded").
func New(cfg Config) *Driver {
	return &Driver{Config: cfg}
}

// Run executes p against input, returning the final output string.
// This is the core's run(program, input_string) -> (output_string,
// status) entry point (§6 "CLI and exit codes"); CLI flag parsing,
// file I/O and the program/input-file syntaxes are external (ioshim,
// cmd/tagrewrite).
func (d *Driver) Run(p *program.Program, input tagstring.String) (tagstring.String, error) {
	s := store.New()
	s.SetFromString(input)

	pc := 0
	foundAny := false
	passes := 0

	for {
		// Step 1: end of a scan pass.
		if pc == p.Len() {
			if foundAny {
				pc = 1
				foundAny = false
				continue
			}
			return nil, &NoMatchingTransformsError{NumRules: p.Len()}
		}

		rule := p.Rule(pc)
		if d.Tracer != nil {
			d.Tracer.Step(pc, rule)
		}

		// Step 2: quick-reject via C3, cheaper than the per-rule
		// prefilter and run first (SPEC_FULL.md DOMAIN STACK); both
		// are necessary-condition tests the real matcher still must
		// confirm or refute.
		noMatch := s.QuickReject(rule.Literals())
		if !noMatch {
			noMatch = !rule.PassesPrefilter(tagstring.RawBytes(s.FromString()))
		}

		matched := false
		if !noMatch {
			// Step 3: register the pattern and run the matcher.
			s.SetCurrentPattern(rule.Pattern)
			m := matcher.New(s)
			m.MaxFrames = d.Config.MaxStackFrames

			ok, err := m.Match()
			if err != nil {
				return nil, wrapMatcherErr(pc, rule.Line, err)
			}
			matched = ok
		}

		if matched {
			// Step 4: build the replacement.
			if err := replace.Build(s, rule.Replacement); err != nil {
				return nil, wrapReplaceErr(rule.Line, err)
			}

			if pc == 1 {
				return s.ToString(), nil
			}

			if d.Tracer != nil {
				d.Tracer.Matched(pc, rule, s.FromString(), s.ToString())
			}

			s.Swap()
			passes++
			if d.Config.MaxPasses > 0 && passes > d.Config.MaxPasses {
				return nil, &NoMatchingTransformsError{NumRules: p.Len()}
			}

			if pc < 1 {
				pc = 1
			}
			foundAny = true
			continue
		}

		// Step 5: no match at this PC.
		if pc == 0 {
			return nil, &StartStepNoMatchError{FromPreview: previewRaw(s.FromString())}
		}
		if foundAny {
			pc = 1
			foundAny = false
			continue
		}
		pc++
	}
}

// previewRaw renders a short raw-byte preview of s for diagnostics,
// reusing tagstring's delimiter-choice formatter capped to a fixed
// length so long inputs don't bloat error messages.
func previewRaw(s tagstring.String) string {
	var b strings.Builder
	tagstring.Format(&b, s, 40)
	return b.String()
}
