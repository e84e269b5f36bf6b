package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface the commands write diagnostics to
type Logger = logrus.FieldLogger

// newLogger returns the logger for diagnostics written to out
func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// configureLogger applies --json, --verbose and their environment
// variables. It runs once the flags are parsed.
func configureLogger() {
	if envJSON, err := EnvToBool("SHAKEMH_JSON"); err == nil {
		argJSONOutput = envJSON
	}
	if envVerbose, err := EnvToBool("SHAKEMH_VERBOSE"); err == nil {
		argVerbose = envVerbose
	}

	if argJSONOutput {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if argVerbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}
