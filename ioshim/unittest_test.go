package ioshim

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/tagrewrite/tagstring"
)

func TestReadUnitTestCases(t *testing.T) {
	src := "; a header comment\n" +
		"the cat sat\n" +
		"the dog sat\n" +
		"ab\\X\n" +
		"Xab\n"

	cases, err := ReadUnitTestCases(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadUnitTestCases: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cases))
	}

	if !tagstring.Equal(cases[0].Input, tagstring.FromPlain("the cat sat")) {
		t.Errorf("case 0 input = %v", cases[0].Input)
	}
	if !tagstring.Equal(cases[0].Expected, tagstring.FromPlain("the dog sat")) {
		t.Errorf("case 0 expected = %v", cases[0].Expected)
	}

	want := tagstring.String{tagstring.Plain('a'), tagstring.Plain('b'), tagstring.Tag('X')}
	if !tagstring.Equal(cases[1].Input, want) {
		t.Errorf("case 1 input = %v, want %v", cases[1].Input, want)
	}
}

func TestReadUnitTestCasesBareTilde(t *testing.T) {
	src := "a~b\nc\n"
	cases, err := ReadUnitTestCases(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadUnitTestCases: %v", err)
	}
	want := tagstring.String{tagstring.Plain('a'), tagstring.Tag('~'), tagstring.Plain('b')}
	if !tagstring.Equal(cases[0].Input, want) {
		t.Errorf("got %v, want %v", cases[0].Input, want)
	}
}

func TestReadUnitTestCasesUnpairedTrailingLine(t *testing.T) {
	src := "only-input\n"
	_, err := ReadUnitTestCases(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for an unpaired trailing line")
	}
}

func TestCheckCaseMismatch(t *testing.T) {
	c := Case{Expected: tagstring.FromPlain("want"), LineNo: 3}
	err := CheckCase(c, tagstring.FromPlain("got"))
	if err == nil {
		t.Fatal("expected a mismatch error")
	}
	if !errors.Is(err, ErrDoesntMatchExpected) {
		t.Errorf("got %v, want ErrDoesntMatchExpected", err)
	}
}

func TestCheckCaseMatch(t *testing.T) {
	c := Case{Expected: tagstring.FromPlain("same")}
	if err := CheckCase(c, tagstring.FromPlain("same")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
