// Package output provides terminal output, styling and logging for the CLI.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without
// timestamps or level prefixes. Command output should read like terminal
// output, not like a log file.
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// newLumberjackLogger creates a rotating file writer configured from
// environment variables.
func newLumberjackLogger(logFilePath string) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	if v := os.Getenv("SIMGIT_LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			lj.MaxSize = n
		}
	}
	if v := os.Getenv("SIMGIT_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			lj.MaxBackups = n
		}
	}
	if v := os.Getenv("SIMGIT_LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			lj.MaxAge = n
		}
	}
	return lj
}

// Splog provides structured logging and user-facing output. Console output
// goes through a plain handler; an optional rotating log file keeps the full
// record with timestamps.
type Splog struct {
	logger     *slog.Logger
	fileLogger *slog.Logger
	logWriter  io.WriteCloser
}

// NewSplog creates a console-only splog. Debug messages are enabled when the
// DEBUG environment variable is set.
func NewSplog() *Splog {
	s, _ := NewSplogWithLogFile("")
	return s
}

// NewSplogWithLogFile creates a splog that additionally appends to a
// rotating log file when logFilePath is non-empty.
func NewSplogWithLogFile(logFilePath string) (*Splog, error) {
	console := &simpleHandler{
		writer:    os.Stdout,
		debugMode: os.Getenv("DEBUG") != "",
	}
	s := &Splog{logger: slog.New(console)}

	if logFilePath != "" {
		lj := newLumberjackLogger(logFilePath)
		s.logWriter = lj
		s.fileLogger = slog.New(slog.NewTextHandler(lj, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return s, nil
}

// Info writes an info message.
func (s *Splog) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.logger.Info(msg)
	if s.fileLogger != nil {
		s.fileLogger.Info(msg)
	}
}

// Warn writes a warning message.
func (s *Splog) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.logger.Warn("⚠️  " + msg)
	if s.fileLogger != nil {
		s.fileLogger.Warn(msg)
	}
}

// Error writes an error message.
func (s *Splog) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.logger.Error(msg)
	if s.fileLogger != nil {
		s.fileLogger.Error(msg)
	}
}

// Debug writes a debug message, shown only when DEBUG is set.
func (s *Splog) Debug(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.logger.Debug(msg)
	if s.fileLogger != nil {
		s.fileLogger.Debug(msg)
	}
}

// Page writes pre-formatted output verbatim.
func (s *Splog) Page(content string) {
	fmt.Fprint(os.Stdout, content)
}

// Newline writes a blank line.
func (s *Splog) Newline() {
	fmt.Fprintln(os.Stdout)
}

// Close releases the log file writer if one was opened.
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
