package store

import (
	"testing"

	"github.com/coregx/tagrewrite/tagstring"
)

func TestFragFixedAccessors(t *testing.T) {
	s := New()
	pat := patternOf("ab", tagstring.DS)
	s.SetCurrentPattern(pat)

	if got := s.NumFragments(); got != 1 {
		t.Fatalf("NumFragments = %d, want 1", got)
	}
	if s.FragIsWildcard(0) {
		t.Error("fragment 0 should be fixed, not wildcard")
	}
	if got := s.FragLengthInPat(0); got != 2 {
		t.Errorf("FragLengthInPat(0) = %d, want 2", got)
	}
	if got := s.FragFirstCharInPat(0); got != tagstring.Tag('a') {
		t.Errorf("FragFirstCharInPat(0) = %v, want 'a' tagged", got)
	}
	fl := s.FragLengthInFromStr(0)
	if !fl.Has || fl.Len != 2 {
		t.Errorf("FragLengthInFromStr(0) = %+v, want {2,true}", fl)
	}
}

func TestFragPinnedWildcardUnmatchedUntilCaptured(t *testing.T) {
	s := New()
	pat := patternOf(tagstring.DS, "x", tagstring.DS)
	s.SetCurrentPattern(pat)

	if got := s.NumFragments(); got != 2 {
		t.Fatalf("NumFragments = %d, want 2", got)
	}
	// fragment 1 is the pinned $ occurrence.
	if !s.FragIsWildcard(1) {
		t.Fatal("fragment 1 should be the pinned wildcard")
	}
	if got := s.FragLengthInPat(1); got != -1 {
		t.Errorf("FragLengthInPat(1) = %d, want -1", got)
	}
	if fl := s.FragLengthInFromStr(1); fl.Has {
		t.Errorf("FragLengthInFromStr(1) = %+v, want unmatched before any capture", fl)
	}
	if _, ok := s.FragFirstCharInFromStr(1); ok {
		t.Error("FragFirstCharInFromStr(1) should be unavailable before any $ capture")
	}

	s.RecordCapture(tagstring.DS, 2, 3)

	fl := s.FragLengthInFromStr(1)
	if !fl.Has || fl.Len != 3 {
		t.Errorf("FragLengthInFromStr(1) after capture = %+v, want {3,true}", fl)
	}
}

func TestAdvanceAndVerifyFragPos(t *testing.T) {
	s := New()
	s.SetFromString(tagstring.FromPlain("xxabcxxabcxx"))

	pat := patternOf("abc")
	s.SetCurrentPattern(pat)

	if !s.AdvanceFragPos(0, 0) {
		t.Fatal("AdvanceFragPos(0,0) should succeed")
	}
	pos, ok := s.FragPos(0)
	if !ok || pos != 2 {
		t.Fatalf("FragPos(0) = (%d,%v), want (2,true)", pos, ok)
	}

	if !s.AdvanceFragPos(0, 3) {
		t.Fatal("AdvanceFragPos(0,3) should find the second occurrence")
	}
	pos, ok = s.FragPos(0)
	if !ok || pos != 7 {
		t.Fatalf("FragPos(0) after advance = (%d,%v), want (7,true)", pos, ok)
	}

	if s.AdvanceFragPos(0, 8) {
		t.Fatal("AdvanceFragPos(0,8) should fail: no further occurrence")
	}

	if !s.VerifyFragPos(0, 7) {
		t.Error("VerifyFragPos(0,7) should succeed")
	}
	if s.VerifyFragPos(0, 3) {
		t.Error("VerifyFragPos(0,3) should fail: content mismatch")
	}
}

func TestCompareSubstringWithPinnedWildcardFragment(t *testing.T) {
	s := New()
	s.SetFromString(tagstring.FromPlain("foobarfoo"))

	pat := patternOf(tagstring.DS, "x", tagstring.DS)
	s.SetCurrentPattern(pat)
	s.RecordCapture(tagstring.DS, 0, 3) // "foo"

	if !s.CompareSubstringWithFragment(6, 3, 1) {
		t.Error("expected from-string[6:9]=\"foo\" to match the $ fragment's captured content")
	}
	if s.CompareSubstringWithFragment(3, 3, 1) {
		t.Error("from-string[3:6]=\"bar\" should not match captured \"foo\"")
	}
}

func TestClearAllPatFragPos(t *testing.T) {
	s := New()
	s.SetFromString(tagstring.FromPlain("abc"))
	s.SetCurrentPattern(patternOf("abc"))
	s.AdvanceFragPos(0, 0)
	if _, ok := s.FragPos(0); !ok {
		t.Fatal("expected FragPos to be set")
	}
	s.ClearAllPatFragPos()
	if _, ok := s.FragPos(0); ok {
		t.Error("expected FragPos cleared")
	}
}
