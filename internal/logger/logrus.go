package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing text lines with full timestamps.
// An unparsable level falls back to info.
func New(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out != nil {
		log.SetOutput(out)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return log
}
