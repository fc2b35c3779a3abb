package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	ref := []Segment{
		{Speaker: "1", Words: []string{"a", "b", "c"}},
		{Speaker: "2", Words: []string{"d", "e"}},
	}
	hyp := []Segment{
		{Speaker: "1", Words: []string{"a", "b", "c"}},
		{Speaker: "1", Words: []string{"d", "e"}},
	}

	s, err := score(ref, hyp)
	require.NoError(t, err)
	assert.Equal(t, 5, s.ReferenceWords)
	assert.Equal(t, 2, s.ErrorWords)
	assert.Equal(t, []Row{
		{RefSpeaker: "1", RefText: "a b c", WordCount: 3, HypSpeaker: "1", HypText: "a b c"},
		{RefSpeaker: "2", RefText: "d e", WordCount: 2, HypSpeaker: "1", HypText: "d e", ErrorWords: 2},
	}, s.Rows)

	der, err := s.DER()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, der, 1e-12)
}

func TestScoreRowMismatch(t *testing.T) {
	_, err := score([]Segment{{Speaker: "1"}}, nil)
	assert.ErrorIs(t, err, ErrRowMismatch)
}

func TestDERZeroReferenceWords(t *testing.T) {
	s, err := score(nil, nil)
	require.NoError(t, err)
	_, err = s.DER()
	assert.ErrorIs(t, err, ErrZeroReferenceWords)
}

func TestEvaluate(t *testing.T) {
	ref := concat(toks("1", "a", "b", "c"), toks("2", "d", "e"))
	hyp := toks("1", "a", "b", "c", "d", "e")

	s, err := Evaluate(ref, hyp)
	require.NoError(t, err)
	der, err := s.DER()
	require.NoError(t, err)
	assert.Equal(t, 5, s.ReferenceWords)
	assert.Equal(t, 2, s.ErrorWords)
	assert.InDelta(t, 0.4, der, 1e-12)
}

func TestEvaluateIgnoresUnmatchedTail(t *testing.T) {
	// the extra recognized word in the replaced run has no reference partner
	ref := concat(toks("1", "a", "x"), toks("2", "b"))
	hyp := concat(toks("1", "a", "y", "z"), toks("1", "b"))

	s, err := Evaluate(ref, hyp)
	require.NoError(t, err)
	assert.Equal(t, 3, s.ReferenceWords)
	assert.Equal(t, 1, s.ErrorWords)
}
