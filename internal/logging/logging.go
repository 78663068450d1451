package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

// Log level constants
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levels = []string{LevelDebug, LevelInfo, LevelWarn, LevelError}

var (
	mu           sync.Mutex
	currentLevel = LevelInfo
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the global logging level. Unknown levels log everything.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// Level returns the current logging level.
func Level() string {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

// ValidLevel reports whether level is one of the known levels.
func ValidLevel(level string) bool {
	return indexOf(level) >= 0
}

// SetOutput redirects every message to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if shouldLog(LevelDebug) {
		logger.Printf("[DEBUG] "+format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if shouldLog(LevelInfo) {
		logger.Printf("[INFO] "+format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if shouldLog(LevelWarn) {
		logger.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if shouldLog(LevelError) {
		logger.Printf("[ERROR] "+format, args...)
	}
}

func indexOf(level string) int {
	for i, l := range levels {
		if l == level {
			return i
		}
	}
	return -1
}

func shouldLog(level string) bool {
	return indexOf(level) >= indexOf(Level())
}
