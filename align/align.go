// Package align computes word-level correspondences between a reference and a
// recognized word sequence.
//
// Alignment runs a longest-matching-block diff over the two word lists and
// keeps only the equal and replace regions. Inside a region words are paired
// by position up to the length of the shorter run; the tail of the longer run
// produces no pair. Words that only exist on one side (insert and delete
// regions) never appear in the result.
//
// The matcher's worst case is quadratic in the input length, and inputs of 200
// words or more have very frequent words treated as junk, as in the classic
// line diff this is modelled on.
package align

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Tag identifies the kind of a diff opcode.
type Tag byte

const (
	Equal   Tag = 'e'
	Replace Tag = 'r'
	Insert  Tag = 'i'
	Delete  Tag = 'd'
)

func (t Tag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Replace:
		return "replace"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Tag(%d)", byte(t))
	}
}

// Opcode maps ref[RefStart:RefEnd] onto hyp[HypStart:HypEnd].
type Opcode struct {
	Tag      Tag
	RefStart int
	RefEnd   int
	HypStart int
	HypEnd   int
}

// WordIndexPair says the reference word at Ref is aligned with the hypothesis word at Hyp.
type WordIndexPair struct {
	Ref int
	Hyp int
}

// Opcodes returns every diff opcode turning ref into hyp, left to right.
func Opcodes(ref, hyp []string) []Opcode {
	m := difflib.NewMatcher(ref, hyp)
	codes := m.GetOpCodes()
	out := make([]Opcode, 0, len(codes))
	for _, c := range codes {
		out = append(out, Opcode{Tag: Tag(c.Tag), RefStart: c.I1, RefEnd: c.I2, HypStart: c.J1, HypEnd: c.J2})
	}
	return out
}

// Pairs expands equal and replace opcodes into positional index pairs.
// Insert and delete opcodes are ignored.
func Pairs(ops []Opcode) []WordIndexPair {
	var out []WordIndexPair
	for _, op := range ops {
		if op.Tag != Equal && op.Tag != Replace {
			continue
		}
		n := min(op.RefEnd-op.RefStart, op.HypEnd-op.HypStart)
		for k := 0; k < n; k++ {
			out = append(out, WordIndexPair{Ref: op.RefStart + k, Hyp: op.HypStart + k})
		}
	}
	return out
}

// Align returns the word correspondences between ref and hyp.
func Align(ref, hyp []string) []WordIndexPair {
	return Pairs(Opcodes(ref, hyp))
}

// Counts tallies opcodes by tag.
func Counts(ops []Opcode) map[Tag]int {
	out := make(map[Tag]int, 4)
	for _, op := range ops {
		out[op.Tag]++
	}
	return out
}
