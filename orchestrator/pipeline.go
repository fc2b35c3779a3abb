package orchestrator

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/word-der/align"
	"github.com/maastricht-university/word-der/clients"
	cfg "github.com/maastricht-university/word-der/config"
	"github.com/maastricht-university/word-der/transcript"
)

type Pipeline struct {
	cfg    *cfg.Root
	http   *clients.HTTP
	parser *transcript.Parser
	log    logrus.FieldLogger
}

func NewPipeline(c *cfg.Root, log logrus.FieldLogger) (*Pipeline, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	parser, err := transcript.NewParser(c.Markers, c.Strict, log)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: c, http: clients.NewHTTP(c.HTTP.Timeout), parser: parser, log: log}, nil
}

// Evaluate aligns two token streams and scores speaker attribution over the
// aligned words.
func Evaluate(ref, hyp []transcript.Token) (Score, error) {
	pairs := align.Align(transcript.Words(ref), transcript.Words(hyp))
	refSegs, hypSegs, err := group(ref, hyp, pairs)
	if err != nil {
		return Score{}, err
	}
	return score(refSegs, hypSegs)
}

// Run scores the hypothesis transcript against the reference one and writes
// the configured CSV and report files.
func (p *Pipeline) Run(ctx context.Context, refSrc, hypSrc string) (*Result, error) {
	refText, err := p.read(ctx, refSrc)
	if err != nil {
		return nil, err
	}
	hypText, err := p.read(ctx, hypSrc)
	if err != nil {
		return nil, err
	}
	ref, err := p.parse(refSrc, refText)
	if err != nil {
		return nil, err
	}
	hyp, err := p.parse(hypSrc, hypText)
	if err != nil {
		return nil, err
	}

	refWords, hypWords := transcript.Words(ref), transcript.Words(hyp)
	ops := align.Opcodes(refWords, hypWords)
	counts := align.Counts(ops)
	p.log.WithFields(logrus.Fields{
		"equal":   counts[align.Equal],
		"replace": counts[align.Replace],
		"insert":  counts[align.Insert],
		"delete":  counts[align.Delete],
	}).Debug("opcodes")

	pairs := align.Pairs(ops)
	refSegs, hypSegs, err := group(ref, hyp, pairs)
	if err != nil {
		return nil, err
	}
	s, err := score(refSegs, hypSegs)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"ref_tokens": len(ref),
		"hyp_tokens": len(hyp),
		"pairs":      len(pairs),
		"rows":       len(s.Rows),
	}).Info("aligned transcripts")

	der, err := s.DER()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Reference:   refSrc,
		Hypothesis:  hypSrc,
		GeneratedAt: time.Now(),
		Score:       s,
		DER:         der,
	}

	if p.cfg.Output != "" {
		if err := WriteCSV(p.cfg.Output, s.Rows); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		p.log.WithField("path", p.cfg.Output).Info("wrote result table")
	}
	if p.cfg.Report != "" {
		if err := writeYAML(p.cfg.Report, res); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		p.log.WithField("path", p.cfg.Report).Info("wrote report")
	}
	return res, nil
}

func (p *Pipeline) parse(src, text string) ([]transcript.Token, error) {
	toks, err := p.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return toks, nil
}

func (p *Pipeline) read(ctx context.Context, src string) (string, error) {
	var (
		text string
		err  error
	)
	if clients.IsURL(src) {
		text, err = p.http.Transcript(ctx, src)
	} else {
		var b []byte
		b, err = os.ReadFile(src)
		text = string(b)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, src, err)
	}
	return text, nil
}
