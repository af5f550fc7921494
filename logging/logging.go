// Package logging builds the logrus logger used by the cliquer command and
// carries it through a context.
package logging

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat indicates a log format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// New returns a logger writing to out at the named level ("debug", "info",
// "warn", ...) in the given format.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "logging")
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return l, nil
}

// FromContext returns the logger stored by WithLogger, or the standard logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if logger, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
		return logger
	}

	return logrus.StandardLogger()
}

// WithLogger adds logger to ctx.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}
