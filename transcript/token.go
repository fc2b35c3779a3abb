// Package transcript turns speaker-annotated plain text into an ordered
// stream of (speaker, word) tokens.
package transcript

import (
	"errors"
	"fmt"
)

// Token is one word of a transcript together with the speaker it is attributed to.
type Token struct {
	Speaker string `yaml:"speaker"`
	Word    string `yaml:"word"`
}

// Words projects tokens onto their words, keeping document order.
func Words(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Word
	}
	return out
}

// DefaultMarkers are the speaker marker words recognised when none are configured.
var DefaultMarkers = []string{"Speaker", "Спикер"}

var (
	ErrMalformed = errors.New("malformed transcript")
	ErrNoMarkers = errors.New("no speaker markers configured")
)

// MalformedError reports a speaker block that lacks the "<marker> <id>:" structure.
type MalformedError struct {
	Chunk int
	Text  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: block %d: %q", ErrMalformed, e.Chunk, e.Text)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }
