package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects how log lines are written.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseFormat resolves a --log-format value. Empty means console.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatConsole, "":
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (use %s or %s)", s, FormatConsole, FormatJSON)
	}
}

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level string
	// Format defaults to JSON.
	Format Format
	// Writer defaults to stderr; stdout carries generated stylesheets.
	Writer io.Writer
}

// Fields are structured values attached to every line of a derived logger.
type Fields map[string]any

// Logger is a leveled zerolog logger. A nil *Logger discards everything, so
// library code can accept one without checking.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer
	switch opts.Format {
	case FormatJSON, "":
		output = writer
	case FormatConsole:
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// WithFields returns a derived logger carrying fields in key order.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ctx := l.base.With()
	for _, key := range keys {
		ctx = ctx.Interface(key, fields[key])
	}
	return &Logger{base: ctx.Logger()}
}

func (l *Logger) Info(msg string)  { l.write(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.write(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
