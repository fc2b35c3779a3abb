package orchestrator

import (
	"fmt"
	"strings"
)

// score totals reference words over all rows and error words over rows whose
// speakers disagree.
func score(ref, hyp []Segment) (Score, error) {
	if len(ref) != len(hyp) {
		return Score{}, fmt.Errorf("%w: %d reference rows, %d hypothesis rows", ErrRowMismatch, len(ref), len(hyp))
	}
	s := Score{Rows: make([]Row, 0, len(ref))}
	for k := range ref {
		row := Row{
			RefSpeaker: ref[k].Speaker,
			RefText:    strings.Join(ref[k].Words, " "),
			WordCount:  len(ref[k].Words),
			HypSpeaker: hyp[k].Speaker,
			HypText:    strings.Join(hyp[k].Words, " "),
		}
		if row.Mismatch() {
			row.ErrorWords = len(hyp[k].Words)
		}
		s.ReferenceWords += row.WordCount
		s.ErrorWords += row.ErrorWords
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}
