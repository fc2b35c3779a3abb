// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/word-der/config"
)

func New(c config.Log, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	if strings.ToLower(c.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l
}
