// Package log creates [slog.Handler]s backed by charmbracelet/log.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, parsing the
// level and format from strings.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, level, formatter), nil
}

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, level log.Level, formatter log.Formatter) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
	})
}

// GetLevel parses a log level. "warning" and "trace" are accepted as aliases
// of "warn" and "debug".
func GetLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "warning":
		level = "warn"
	case "trace":
		level = "debug"
	case "panic":
		level = "fatal"
	}

	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	return l, nil
}

// GetFormatter parses a log format.
func GetFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat, "":
		return log.TextFormatter, nil
	case JSONFormat:
		return log.JSONFormatter, nil
	case LogfmtFormat:
		return log.LogfmtFormatter, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}
