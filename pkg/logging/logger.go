package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level names accepted by Config.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config controls the process wide logger.
type Config struct {
	Level      string // debug, info, warn or error
	Format     string // text or json
	OutputPath string // log file path, empty logs to stderr
}

var (
	mu      sync.RWMutex
	logger  *slog.Logger
	logFile *os.File
)

// Init builds the global logger from config. It is safe to call again; a
// previously opened log file is closed first.
func Init(cfg Config) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	var file *os.File
	if cfg.OutputPath != "" {
		file, err = os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = file
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	logger = slog.New(handler)
	return nil
}

// InitDefault configures info level text logging to stderr.
func InitDefault() {
	_ = Init(Config{Level: LevelInfo, Format: "text"})
}

// Close releases the log file if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// GetLogger returns the global logger, initializing defaults on first use.
func GetLogger() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	InitDefault()
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Debug logs at debug level on the global logger.
func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }

// Info logs at info level on the global logger.
func Info(msg string, args ...any) { GetLogger().Info(msg, args...) }

// Warn logs at warn level on the global logger.
func Warn(msg string, args ...any) { GetLogger().Warn(msg, args...) }

// Error logs at error level on the global logger.
func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }
