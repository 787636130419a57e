package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Message prefixes for the non-plain levels.
const (
	warnPrefix  = "⚠️  "
	errorPrefix = "❌ "
	tipPrefix   = "💡 "
)

// simpleHandler writes bare messages to the console, without timestamps or
// level tags. The quiet flag is shared with the owning Splog so it can flip
// mid-run.
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *simpleHandler) WithGroup(_ string) slog.Handler      { return h }

// teeHandler duplicates records to the console and file handlers.
type teeHandler struct {
	handlers []slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		wrapped[i] = handler.WithAttrs(attrs)
	}
	return &teeHandler{handlers: wrapped}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	wrapped := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		wrapped[i] = handler.WithGroup(name)
	}
	return &teeHandler{handlers: wrapped}
}

// envInt reads a positive integer override from the environment.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// newRotatingWriter builds the rotating file sink. Size in megabytes, age in
// days; RIVET_LOG_MAX_SIZE, RIVET_LOG_MAX_BACKUPS, and RIVET_LOG_MAX_AGE
// override the defaults.
func newRotatingWriter(logFilePath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    envInt("RIVET_LOG_MAX_SIZE", 1),
		MaxBackups: envInt("RIVET_LOG_MAX_BACKUPS", 2),
		MaxAge:     envInt("RIVET_LOG_MAX_AGE", 30),
	}
}

// newFileHandler builds the slog handler for the log file. Unlike the
// console, the file keeps every level and carries timestamps.
func newFileHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
			}
			return a
		},
	})
}

// Splog is rivet's terminal logger: plain messages on stdout, everything
// mirrored with timestamps to a rotating log file when one is configured.
type Splog struct {
	logger    *slog.Logger
	writer    *os.File
	logWriter io.WriteCloser
	quiet     bool
}

// NewSplog creates a console-only logger. Debug messages show when the DEBUG
// environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig("")
	return splog
}

// NewSplogWithConfig creates a logger that also mirrors to the given log
// file. An empty path means console only.
func NewSplogWithConfig(logFilePath string) (*Splog, error) {
	splog := &Splog{writer: os.Stdout}

	handlers := []slog.Handler{&simpleHandler{
		writer:    splog.writer,
		debugMode: os.Getenv("DEBUG") != "",
		quiet:     &splog.quiet,
	}}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := newRotatingWriter(logFilePath)
		splog.logWriter = rotating
		handlers = append(handlers, newFileHandler(rotating))
	}

	splog.logger = slog.New(&teeHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet suppresses console output. File logging stays active.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether console output is suppressed.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

// Quietly runs fn with console output suppressed, restoring the previous
// quiet state on every exit path. It keeps session-internal diagnostics from
// interleaving with streamed output while a submission is pending.
func (s *Splog) Quietly(fn func() error) error {
	prev := s.quiet
	s.quiet = true
	defer func() {
		s.quiet = prev
	}()
	return fn()
}

func (s *Splog) log(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes a plain informational message.
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "", format, args)
}

// Warn writes a warning message.
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, warnPrefix, format, args)
}

// Error writes an error message.
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, errorPrefix, format, args)
}

// Debug writes a debug message, shown only in debug mode.
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, "", format, args)
}

// Tip writes a suggestion for the user.
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, tipPrefix, format, args)
}

// Page writes raw content straight to the terminal, bypassing the quiet
// flag. Streamed model output goes through here.
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a bare newline to the terminal.
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened.
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
