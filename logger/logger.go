// Package logger builds log/slog loggers for depsort and carries them
// through context.Context.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	l, _ := New(ConfigDefault()) //nolint:errcheck // the default config is always valid
	SetDefault(l)
}

// Level is a log level; values match log/slog.
type Level int

var (
	Debug = Level(slog.LevelDebug)
	Info  = Level(slog.LevelInfo)
	Warn  = Level(slog.LevelWarn)
	Error = Level(slog.LevelError)
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

var validLevels = map[Level]bool{
	Debug: true,
	Info:  true,
	Warn:  true,
	Error: true,
}

var strLevels = map[string]Level{
	"debug":   Debug,
	"info":    Info,
	"warn":    Warn,
	"warning": Warn,
	"error":   Error,
}

// ParseLevel converts a level name (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	k := strings.ToLower(s)
	l, ok := strLevels[k]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s", k)
	}

	return l, nil
}

// Format selects the slog handler.
type Format string

const (
	// FormatConsole uses console-slog for compact, colored output.
	FormatConsole Format = "console"
	// FormatJSON uses the standard slog JSONHandler.
	FormatJSON Format = "json"
	// FormatDev uses devslog for verbose multi-line output with sources.
	FormatDev Format = "dev"
	// FormatNone discards everything.
	FormatNone Format = "none"
)

// ParseFormat validates a format name (any case).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatConsole, FormatJSON, FormatDev, FormatNone:
		return f, nil
	}

	return "", fmt.Errorf("invalid log format: %s", s)
}

// Config describes a logger.
type Config struct {
	Level       Level
	Format      Format
	Destination io.Writer // defaults to os.Stderr
	Color       bool
}

// LogValue lets a Config be logged as a group.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", c.Level.String()),
		slog.String("format", string(c.Format)),
		slog.Bool("color", c.Color),
	)
}

// ConfigDefault is info-level console output to stderr with colors.
func ConfigDefault() Config {
	return Config{
		Level:       Info,
		Format:      FormatConsole,
		Destination: os.Stderr,
		Color:       true,
	}
}

// New returns a logger for cfg.
func New(cfg Config) (*slog.Logger, error) {
	if cfg.Destination == nil {
		cfg.Destination = os.Stderr
	}
	if !validLevels[cfg.Level] {
		return nil, fmt.Errorf("unsupported log level: %d", cfg.Level)
	}

	opts := slog.HandlerOptions{Level: slog.Level(cfg.Level)}

	var handler slog.Handler
	switch Format(strings.ToLower(string(cfg.Format))) {
	case FormatConsole:
		handler = console.NewHandler(cfg.Destination, &console.HandlerOptions{
			Level:   slog.Level(cfg.Level),
			NoColor: !cfg.Color,
		})
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Destination, &opts)
	case FormatDev:
		opts.AddSource = true
		handler = devslog.NewHandler(cfg.Destination, &devslog.Options{
			HandlerOptions:  &opts,
			NewLineAfterLog: true,
			NoColor:         !cfg.Color,
		})
	case "", FormatNone:
		handler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	default:
		return nil, fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	return slog.New(handler), nil
}

type ctxKey struct{}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From returns the logger stored in ctx, or a discarding logger when there
// is none. Library code uses it so that it stays silent unless the caller
// opted in.
func From(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return newDiscard()
	}
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return newDiscard()
}

func newDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// Default returns the process-wide logger. Prefer From with an explicit
// context; Default is for code that has none.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *slog.Logger) {
	defaultLogger.Store(l)
}
