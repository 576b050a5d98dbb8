// Package program implements the in-memory rule list (§3 "Rule",
// "Program"; §4.2, component C2): each rule's pattern, replacement,
// precomputed literal-character set, and per-rule Aho-Corasick
// prefilter over its fixed fragments.
package program

import "errors"

// ErrTooFewRules is returned by New when fewer than two rules are
// given. A program needs at least a start rule (PC 0) and a
// terminator rule (PC 1); with fewer than two the engine can never
// reach a halting state (§3).
var ErrTooFewRules = errors.New("program: fewer than two rules")

// Program is an ordered, immutable list of rules, indexed by PC (§3).
type Program struct {
	rules []*Rule
}

// New builds a Program from rules in source order. The core itself
// assumes its caller has already validated the program (§3), but New
// still checks the minimum-rule-count invariant defensively, since a
// library constructor shouldn't hand back a Program the driver can
// never usefully run.
func New(rules []*Rule) (*Program, error) {
	if len(rules) < 2 {
		return nil, ErrTooFewRules
	}
	return &Program{rules: rules}, nil
}

// Len returns the number of rules in the program.
func (p *Program) Len() int {
	return len(p.rules)
}

// Rule returns the rule at PC pc. The caller (driver) is responsible
// for keeping pc in range; the program never synthesizes a rule.
func (p *Program) Rule(pc int) *Rule {
	return p.rules[pc]
}
