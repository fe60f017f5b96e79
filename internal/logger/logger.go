// Package logger is the zerolog wrapper shared by the panel, the host model
// and the commands. The interactive panel owns the terminal, so in practice
// logs are JSON lines appended to a file (OpenFile) or dropped (Discard);
// New with a writer is used by tests and one-shot commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// HumanReadable switches from JSON lines to an uncoloured console format.
	HumanReadable bool
	// Writer defaults to stderr.
	Writer io.Writer
}

// Logger is a leveled logger carrying fixed context fields such as
// component=panel. A nil *Logger is valid and logs nothing.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger writing to opts.Writer.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// OpenFile appends JSON lines to the file at path, creating it if needed.
// The returned closer releases the file.
func OpenFile(path, level string) (*Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := New(Options{Level: level, Writer: file})
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, file, nil
}

// Discard returns a logger that drops every entry. It is the default when no
// log file is configured.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func parseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// WithFields returns a derived logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// With returns a derived logger with one extra field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// Debug logs panel transitions and selections.
func (l *Logger) Debug(msg string) {
	l.write(zerolog.DebugLevel, nil, msg)
}

// Info logs commits, resets and lifecycle events.
func (l *Logger) Info(msg string) {
	l.write(zerolog.InfoLevel, nil, msg)
}

// Warn logs recoverable problems.
func (l *Logger) Warn(msg string) {
	l.write(zerolog.WarnLevel, nil, msg)
}

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) {
	l.write(zerolog.ErrorLevel, err, msg)
}

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
