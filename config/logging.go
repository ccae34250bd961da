package config

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a dedicated logrus logger from the configured level and
// format, writing to out (stderr if nil). Unknown levels fall back to warn and
// unknown formats to text, with a warning on the new logger.
//
// No global logrus state is touched.
func NewLogger(c Config, out io.Writer) *logrus.Entry {
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)

	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	ll := c.LogLevel
	if ll == "" {
		ll = "warn"
	}
	level, err := logrus.ParseLevel(ll)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if err != nil {
		logger.WithFields(logrus.Fields{"level": ll}).Warn("Could not parse log level, setting to WARN")
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		logger.WithFields(logrus.Fields{"format": c.LogFormat}).Warn("Unknown log format specified, using text. Possible options are json and text.")
	}

	return logrus.NewEntry(logger).WithField("component", "ogen")
}

// Discard returns a logger entry that drops everything. It is the default for
// library components that were not given a logger.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(logger)
}
