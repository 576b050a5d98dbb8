package matcher

import "errors"

// ErrInvariant is returned when the matcher relies on a fact about its
// own state (e.g. a just-placed fragment's from-string length being
// known) that turns out false. It signals an internal invariant break
// rather than an ordinary no-match, and is never expected in practice;
// the driver surfaces it as a distinct fatal status (§7).
var ErrInvariant = errors.New("matcher: internal invariant violated")

// ErrStackLimitExceeded is returned when MaxFrames is set and the
// backtracking stack would grow past it. Unlike ErrInvariant, this is
// an opt-in resource guard, not an internal contract break — the
// search was simply still speculating when the caller's budget ran
// out.
var ErrStackLimitExceeded = errors.New("matcher: backtracking stack limit exceeded")
