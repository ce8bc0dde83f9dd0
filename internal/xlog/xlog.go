// Package xlog provides component-scoped structured logging for discern.
package xlog

import (
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"what"},
	})
	return log
}

// Init sets the log level from the accumulated -v count: 0 warn, 1 info,
// 2 debug, 3 or more trace.
func Init(verbosity int) {
	logger.SetLevel(levelFor(verbosity))
}

// Get returns a log entry scoped to one component.
func Get(what string) *logrus.Entry {
	return logger.WithField("what", what)
}

func levelFor(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.WarnLevel
	case verbosity == 1:
		return logrus.InfoLevel
	case verbosity == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
