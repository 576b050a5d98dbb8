package tagstring

import "testing"

func TestCharSetSetTest(t *testing.T) {
	var cs CharSet
	cs.Set(Tag('a'))
	cs.Set(Plain('z'))

	if !cs.Test(Tag('a')) {
		t.Error("expected Tag('a') to be set")
	}
	if !cs.Test(Plain('z')) {
		t.Error("expected Plain('z') to be set")
	}
	if cs.Test(Plain('a')) {
		t.Error("Plain('a') should not be set merely because Tag('a') is")
	}
	if cs.Test(Tag('b')) {
		t.Error("Tag('b') should not be set")
	}
}

func TestCharSetSubset(t *testing.T) {
	var pattern, from CharSet
	pattern.Set(Tag('a'))
	pattern.Set(Plain('b'))

	from.Set(Tag('a'))

	if pattern.Subset(&from) {
		t.Error("pattern needs Plain('b') which from-string lacks: should not be a subset")
	}

	from.Set(Plain('b'))
	if !pattern.Subset(&from) {
		t.Error("from-string now has every char pattern needs: should be a subset")
	}
}

func TestCharsUsed(t *testing.T) {
	s := String{Tag('a'), Plain('b'), Tag('a')}
	cs := CharsUsed(s)

	if !cs.Test(Tag('a')) || !cs.Test(Plain('b')) {
		t.Fatal("CharsUsed missed a character actually present in the string")
	}
	if cs.Test(Plain('a')) {
		t.Fatal("CharsUsed set a character not present in the string")
	}
}
