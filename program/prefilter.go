package program

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/tagrewrite/tagstring"
)

// buildPrefilter builds an Aho-Corasick automaton over fragments' raw
// (untagged) bytes, for use as a rule's literal prefilter (see
// Rule.PassesPrefilter). Returns nil if there are no fragments to
// build one from, or if the builder rejects the fragment set.
func buildPrefilter(fragments []tagstring.String) *ahocorasick.Automaton {
	if len(fragments) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, frag := range fragments {
		builder.AddPattern(tagstring.RawBytes(frag))
	}

	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}
