package transcript

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	timestampLine = regexp.MustCompile(`^[0-9]:`)
	punctuation   = strings.NewReplacer("[", " ", "]", " ", ".", " ", ",", " ", "?", " ", "!", " ", "-", " ")
)

// Parser splits raw transcripts on speaker markers.
type Parser struct {
	markers *regexp.Regexp
	strict  bool
	log     logrus.FieldLogger
}

// NewParser builds a parser recognising the given marker words. In strict mode
// a malformed speaker block aborts parsing; otherwise it is skipped with a warning.
func NewParser(markers []string, strict bool, log logrus.FieldLogger) (*Parser, error) {
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" {
			quoted = append(quoted, regexp.QuoteMeta(m))
		}
	}
	if len(quoted) == 0 {
		return nil, ErrNoMarkers
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{
		markers: regexp.MustCompile(strings.Join(quoted, "|")),
		strict:  strict,
		log:     log,
	}, nil
}

// Parse returns the (speaker, word) tokens of text in document order.
//
// Lines starting with a digit and a colon are dropped, the remaining lines are
// joined and split on marker words. Each block must read "<id>: words"; the
// speaker id is the first field before the colon and the words are everything
// after it, with [ ] . , ? ! - treated as whitespace.
func (p *Parser) Parse(text string) ([]Token, error) {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, l := range lines {
		l = strings.TrimSuffix(l, "\r")
		if timestampLine.MatchString(l) {
			continue
		}
		kept = append(kept, l)
	}

	blocks := p.markers.Split(strings.Join(kept, " "), -1)

	var tokens []Token
	for i, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		// anything ahead of the first marker belongs to no speaker
		if i == 0 {
			if err := p.malformed(i, block); err != nil {
				return nil, err
			}
			continue
		}
		head, body, found := strings.Cut(block, ":")
		id := strings.Fields(punctuation.Replace(head))
		if !found || len(id) == 0 {
			if err := p.malformed(i, block); err != nil {
				return nil, err
			}
			continue
		}
		for _, w := range strings.Fields(punctuation.Replace(body)) {
			tokens = append(tokens, Token{Speaker: id[0], Word: w})
		}
	}
	return tokens, nil
}

func (p *Parser) malformed(i int, block string) error {
	block = strings.TrimSpace(block)
	if p.strict {
		return &MalformedError{Chunk: i, Text: block}
	}
	p.log.WithFields(logrus.Fields{"block": i, "text": block}).Warn("skipping block without speaker header")
	return nil
}
