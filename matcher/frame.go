package matcher

// frame is one speculative choice in the backtracking search (§4.4's
// "match-state frame"): either a fragment placement attempt still to
// verify (fixedIsMatched == false) or a placed fragment with its
// preceding gap partly or fully filled (fixedIsMatched == true).
type frame struct {
	fragIx int

	// patWildIx, patFixedIx bracket the current gap in the pattern:
	// wildcards still to resolve lie in [patWildIx, patFixedIx), and
	// patFixedIx is always the current fragment's starting index in
	// the pattern (or len(pattern) once fragIx is past the last
	// fragment).
	patWildIx, patFixedIx int

	// fsWildIx, fsWildEndIx bracket the from-string substring the
	// wildcard currently being resolved is claiming.
	fsWildIx, fsWildEndIx int

	// fsFixedIx is the from-string position the current fragment
	// sits at (once placed), or the anchor to search from (before
	// placement).
	fsFixedIx int

	// fsLeftIx is the leftmost from-string index touched so far by
	// this attempt, used to compute the prefix span on success. -1
	// means "none yet".
	fsLeftIx int

	fixedIsMatched bool
}
