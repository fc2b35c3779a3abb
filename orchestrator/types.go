package orchestrator

import (
	"errors"
	"time"
)

var (
	// ErrZeroReferenceWords is returned when no reference word was aligned, so the
	// error rate has no denominator.
	ErrZeroReferenceWords = errors.New("division by zero: no reference words")
	ErrSourceUnreadable   = errors.New("transcript source not readable")
	ErrRowMismatch        = errors.New("segment tables are not row-synchronized")
)

// Segment is a run of consecutive aligned words attributed to one speaker.
type Segment struct {
	Speaker string   `yaml:"speaker"`
	Words   []string `yaml:"words"`
}

// Row pairs the reference and hypothesis segments built from the same aligned words.
type Row struct {
	RefSpeaker string `yaml:"ref_speaker"`
	RefText    string `yaml:"ref_text"`
	WordCount  int    `yaml:"words_count"`
	HypSpeaker string `yaml:"result_speaker"`
	HypText    string `yaml:"result_text"`
	ErrorWords int    `yaml:"error_words"`
}

// Mismatch reports whether the recognizer attributed the row to another speaker.
func (r Row) Mismatch() bool { return r.RefSpeaker != r.HypSpeaker }

// Score accumulates word counts over a segment table pair.
type Score struct {
	ReferenceWords int   `yaml:"reference_words"`
	ErrorWords     int   `yaml:"error_words"`
	Rows           []Row `yaml:"rows"`
}

// DER is the share of reference words attributed to the wrong speaker.
func (s Score) DER() (float64, error) {
	if s.ReferenceWords == 0 {
		return 0, ErrZeroReferenceWords
	}
	return float64(s.ErrorWords) / float64(s.ReferenceWords), nil
}

// Result is the outcome of one pipeline run.
type Result struct {
	Reference   string    `yaml:"reference"`
	Hypothesis  string    `yaml:"hypothesis"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Score       Score     `yaml:"score"`
	DER         float64   `yaml:"der"`
}
