package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the whole service.
// - zero external deps
// - Init(level) once at startup, then Debugf/Infof/Warnf/Errorf/Fatalf

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu    sync.RWMutex
	out   = log.New(os.Stdout, "", 0)
	level = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn, error,
// fatal). Unknown or empty values fall back to info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = parseLevel(l)
}

// SetOutput redirects log output; used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", 0)
}

func parseLevel(l string) Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

func logf(l Level, tag, format string, v ...interface{}) {
	mu.RLock()
	enabled := l >= level
	w := out
	mu.RUnlock()
	if !enabled {
		return
	}
	prefix := fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), tag)
	w.Printf(prefix+format, v...)
}

func Debugf(format string, v ...interface{}) { logf(LevelDebug, "DEBUG", format, v...) }
func Infof(format string, v ...interface{})  { logf(LevelInfo, "INFO", format, v...) }
func Warnf(format string, v ...interface{})  { logf(LevelWarn, "WARN", format, v...) }
func Errorf(format string, v ...interface{}) { logf(LevelError, "ERROR", format, v...) }

func Fatalf(format string, v ...interface{}) {
	logf(LevelFatal, "FATAL", format, v...)
	os.Exit(1)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
