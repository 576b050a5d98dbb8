package store

import "github.com/coregx/tagrewrite/tagstring"

// Capture records one wildcard occurrence matched against the
// from-string: its kind, and the [Start, Start+Length) span it claimed.
type Capture struct {
	Kind   tagstring.Wildcard
	Start  int
	Length int
}

// captureList is the ordered (creation-order, i.e. left-to-right)
// sequence of captures produced while matching one pattern, plus a
// per-kind index of each kind's first capture.
type captureList struct {
	captures []Capture
	firstOf  [tagstring.None + 1]int // index into captures, or -1
}

func newCaptureList() captureList {
	cl := captureList{}
	cl.reset()
	return cl
}

func (cl *captureList) reset() {
	cl.captures = cl.captures[:0]
	for k := range cl.firstOf {
		cl.firstOf[k] = -1
	}
}

// record appends a new capture, updating firstOf if this is the first
// capture of its kind.
func (cl *captureList) record(kind tagstring.Wildcard, start, length int) int {
	ix := len(cl.captures)
	cl.captures = append(cl.captures, Capture{Kind: kind, Start: start, Length: length})
	if cl.firstOf[kind] == -1 {
		cl.firstOf[kind] = ix
	}
	return ix
}

// first returns the index of kind's first capture, or -1 if kind has no
// captures yet.
func (cl *captureList) first(kind tagstring.Wildcard) int {
	return cl.firstOf[kind]
}

// get returns the capture at index ix.
func (cl *captureList) get(ix int) Capture {
	return cl.captures[ix]
}

// unmatch drops every capture whose end exceeds newLength (an abandoned
// rightmost region during backtracking) and rebuilds firstOf.
func (cl *captureList) unmatch(newLength int) {
	n := 0
	for _, c := range cl.captures {
		if c.Start+c.Length <= newLength {
			cl.captures[n] = c
			n++
		}
	}
	cl.captures = cl.captures[:n]

	for k := range cl.firstOf {
		cl.firstOf[k] = -1
	}
	for i, c := range cl.captures {
		if cl.firstOf[c.Kind] == -1 {
			cl.firstOf[c.Kind] = i
		}
	}
}

// len returns the number of recorded captures.
func (cl *captureList) len() int {
	return len(cl.captures)
}
