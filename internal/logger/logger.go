// Package logger provides the three-tier line logger used across mathcoach.
//
// Tiers, lowest to highest:
//
//	DEV  verbose debug output
//	TEST test-execution info
//	PRD  production events (errors, key business events), always active
//
// Lines are written as "[YYYY-MM-DD HH:mm:ss] [LEVEL] message key=value...".
// PRD lines go to the error writer so they survive stdout redirection.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Tier levels mapped onto slog levels.
const (
	LevelDev  = slog.LevelDebug
	LevelTest = slog.LevelInfo
	LevelPrd  = slog.LevelError
)

// ParseLevel maps a tier name (case-insensitive) to its level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEV":
		return LevelDev, true
	case "TEST":
		return LevelTest, true
	case "PRD":
		return LevelPrd, true
	}
	return 0, false
}

// LevelName returns the tier name printed in log lines.
func LevelName(l slog.Level) string {
	switch {
	case l < LevelTest:
		return "DEV"
	case l < LevelPrd:
		return "TEST"
	default:
		return "PRD"
	}
}

// ResolveLevel picks the active tier from LOG_LEVEL, falling back to DEV in
// development (MATHCOACH_ENV=development) and PRD otherwise.
func ResolveLevel(getenv func(string) string) slog.Level {
	if l, ok := ParseLevel(getenv("LOG_LEVEL")); ok {
		return l
	}
	if strings.EqualFold(getenv("MATHCOACH_ENV"), "development") {
		return LevelDev
	}
	return LevelPrd
}

// Options configures a Logger.
type Options struct {
	Level slog.Leveler
	Out   io.Writer // DEV and TEST lines
	Err   io.Writer // PRD lines
	Now   func() time.Time
}

// Logger is a leveled line logger.
type Logger struct {
	sl *slog.Logger
}

// New creates a Logger. Nil writers default to stdout/stderr.
func New(opts Options) *Logger {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = ResolveLevel(os.Getenv)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := &lineHandler{
		out:   opts.Out,
		err:   opts.Err,
		level: opts.Level,
		now:   opts.Now,
		mu:    &sync.Mutex{},
	}
	return &Logger{sl: slog.New(h)}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(Options{Level: LevelPrd + 1, Out: io.Discard, Err: io.Discard})
}

// Dev logs verbose debug output.
func (l *Logger) Dev(msg string, args ...any) {
	l.sl.Log(context.Background(), LevelDev, msg, args...)
}

// Test logs test-execution info.
func (l *Logger) Test(msg string, args ...any) {
	l.sl.Log(context.Background(), LevelTest, msg, args...)
}

// Prd logs a production event.
func (l *Logger) Prd(msg string, args ...any) {
	l.sl.Log(context.Background(), LevelPrd, msg, args...)
}

// With returns a Logger that appends the given attributes to every line.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.sl.With(args...)}
}

var (
	defaultMu sync.RWMutex
	std       = New(Options{})
)

// Default returns the process-wide Logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return std
}

// SetDefault replaces the process-wide Logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	std = l
}
