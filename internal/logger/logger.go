package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	NoColor       bool
	Writer        io.Writer
}

// Logger wraps zerolog so packages share one small, nil-safe logging API.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger. Output goes to stderr unless a Writer is
// supplied so command output on stdout stays machine readable.
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

	var output io.Writer = writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    opts.NoColor,
			TimeFormat: time.Kitchen,
		}
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied fields.
func (l *Logger) With(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// Debug writes a debug entry with optional fields.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	write(l.base.Debug(), msg, fields)
}

// Info writes an informational entry with optional fields.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	write(l.base.Info(), msg, fields)
}

// Warn writes a warning entry with optional fields.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	write(l.base.Warn(), msg, fields)
}

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	write(event, msg, fields)
}

func write(event *zerolog.Event, msg string, fields []map[string]any) {
	for _, set := range fields {
		event = event.Fields(set)
	}
	event.Msg(msg)
}
