package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

// Leveled package logger on top of log/slog.
// - Init(level) adjusts the level at any time
// - Setup(cfg) picks text/json output and optional rotated log files
// - Logger(module) hands out module-scoped *slog.Logger values

// LevelFatal sits above slog.LevelError; Fatalf always logs at it.
const LevelFatal = slog.Level(12)

// Config controls output format and optional file rotation.
type Config struct {
	Level        string
	Format       string // text or json
	Path         string // directory for rotated files; empty logs to stdout only
	RotationTime time.Duration
	MaxAge       time.Duration
}

var (
	mu     sync.RWMutex
	level  = new(slog.LevelVar)
	logger = slog.New(newHandler(os.Stdout, "text"))
)

func newHandler(w io.Writer, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String(a.Key, t.Format(time.RFC3339))
				}
			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok && l >= LevelFatal {
					return slog.String(a.Key, "FATAL")
				}
			}
			return a
		},
	}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	level.Set(parseLevel(l))
}

// Setup applies cfg: level, output format and, when Path is set, a daily
// rotated file next to stdout.
func Setup(cfg Config) error {
	Init(cfg.Level)

	var out io.Writer = os.Stdout
	if cfg.Path != "" {
		rotation := cfg.RotationTime
		if rotation <= 0 {
			rotation = 24 * time.Hour
		}
		maxAge := cfg.MaxAge
		if maxAge <= 0 {
			maxAge = 7 * 24 * time.Hour
		}
		rl, err := rotatelogs.New(
			filepath.Join(cfg.Path, "docstore-%Y-%m-%d.log"),
			rotatelogs.WithRotationTime(rotation),
			rotatelogs.WithMaxAge(maxAge),
		)
		if err != nil {
			return fmt.Errorf("configure file logger: %w", err)
		}
		out = io.MultiWriter(os.Stdout, rl)
	}

	mu.Lock()
	logger = slog.New(newHandler(out, cfg.Format))
	mu.Unlock()
	return nil
}

func parseLevel(l string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return LevelFatal
	default:
		return slog.LevelInfo
	}
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func logf(l slog.Level, format string, v ...interface{}) {
	lg := current()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) { logf(slog.LevelDebug, format, v...) }
func Infof(format string, v ...interface{})  { logf(slog.LevelInfo, format, v...) }
func Warnf(format string, v ...interface{})  { logf(slog.LevelWarn, format, v...) }
func Errorf(format string, v ...interface{}) { logf(slog.LevelError, format, v...) }

func Fatalf(format string, v ...interface{}) {
	current().Log(context.Background(), LevelFatal, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Logger returns a logger tagged with module. Loggers obtained before Setup
// keep writing to the previous output.
func Logger(module string) *slog.Logger {
	return current().With("module", module)
}

// LevelString returns the current level as text.
func LevelString() string {
	switch l := level.Level(); {
	case l >= LevelFatal:
		return "fatal"
	case l >= slog.LevelError:
		return "error"
	case l >= slog.LevelWarn:
		return "warn"
	case l >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
