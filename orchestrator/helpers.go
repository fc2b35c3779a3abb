package orchestrator

import (
	"fmt"

	"github.com/maastricht-university/word-der/align"
	"github.com/maastricht-university/word-der/transcript"
)

// group walks the correspondences and cuts both sides into segments. A speaker
// change on either side starts a new row on both, so ref[k] and hyp[k] always
// cover the same aligned words.
func group(ref, hyp []transcript.Token, pairs []align.WordIndexPair) ([]Segment, []Segment, error) {
	var (
		refSegs, hypSegs []Segment
		open             bool
		lastRef, lastHyp string
	)
	for _, p := range pairs {
		if p.Ref < 0 || p.Ref >= len(ref) || p.Hyp < 0 || p.Hyp >= len(hyp) {
			return nil, nil, fmt.Errorf("pair (%d,%d) out of range (%d,%d)", p.Ref, p.Hyp, len(ref), len(hyp))
		}
		r, h := ref[p.Ref], hyp[p.Hyp]
		if !open || r.Speaker != lastRef || h.Speaker != lastHyp {
			refSegs = append(refSegs, Segment{Speaker: r.Speaker})
			hypSegs = append(hypSegs, Segment{Speaker: h.Speaker})
			open = true
		}
		k := len(refSegs) - 1
		refSegs[k].Words = append(refSegs[k].Words, r.Word)
		hypSegs[k].Words = append(hypSegs[k].Words, h.Word)
		lastRef, lastHyp = r.Speaker, h.Speaker
	}
	return refSegs, hypSegs, nil
}
