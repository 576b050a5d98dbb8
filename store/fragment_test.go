package store

import (
	"testing"

	"github.com/coregx/tagrewrite/tagstring"
)

func patternOf(toks ...any) tagstring.String {
	var s tagstring.String
	for _, t := range toks {
		switch v := t.(type) {
		case string:
			s = append(s, tagstring.FromTagged(v)...)
		case tagstring.Wildcard:
			s = append(s, v.Char())
		default:
			panic("bad token")
		}
	}
	return s
}

func TestSplitFragments(t *testing.T) {
	tests := []struct {
		name string
		pat  tagstring.String
		want []Fragment
	}{
		{
			name: "pure literal",
			pat:  patternOf("abc"),
			want: []Fragment{{FragmentFixed, 0, 3}},
		},
		{
			name: "literal then first-seen wildcard stays floating, no fragment for it",
			pat:  patternOf("ab", tagstring.DS),
			want: []Fragment{{FragmentFixed, 0, 2}},
		},
		{
			name: "second occurrence of unique wildcard with literal between is pinned",
			pat:  patternOf(tagstring.DS, "x", tagstring.DS),
			want: []Fragment{{FragmentFixed, 1, 1}, {FragmentPinnedWildcard, 2, 1}},
		},
		{
			name: "second occurrence immediately adjacent stays floating",
			pat:  patternOf(tagstring.DS, tagstring.DS, "x"),
			want: []Fragment{{FragmentFixed, 2, 1}},
		},
		{
			name: "star repeated is never pinned, even with literal between",
			pat:  patternOf(tagstring.Star, "x", tagstring.Star),
			want: []Fragment{{FragmentFixed, 1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFragments(tt.pat)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d fragments %+v, want %d %+v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("fragment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
