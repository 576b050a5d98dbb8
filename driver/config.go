package driver

// Config controls engine limits around the two behaviors
// original_source leaves totally unbounded: backtracking stack growth
// and pass count. Both guards are opt-in (zero means "no limit") so
// that, by default, the engine reproduces original_source's documented
// behavior of looping forever on a mis-specified program (§5).
type Config struct {
	// MaxStackFrames caps the matcher's backtracking stack. Zero means
	// unbounded (host memory is the only limit, matching §5). When
	// exceeded, Run returns ErrStackEmpty rather than letting the
	// process grow without bound.
	// Default: 0 (unbounded)
	MaxStackFrames int

	// MaxPasses caps the number of from/to buffer swaps (productive
	// rule applications) before Run gives up with
	// ErrNoMatchingTransforms, as a runaway-program guard.
	// original_source has no such guard; this is an opt-in safety net.
	// Default: 0 (unbounded)
	MaxPasses int
}

// DefaultConfig returns the config matching original_source's
// documented behavior: no stack limit, no pass limit.
func DefaultConfig() Config {
	return Config{
		MaxStackFrames: 0,
		MaxPasses:      0,
	}
}
