// Package logger provides diagnostic logging for the aidoc client.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users see every backend round-trip.
// Errors are always printed; the terminal UI redirects everything to a
// rotating file with UseFile so logging never draws over the screen.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
)

// Rotation limits for the log file.
const (
	maxFileSizeMB = 10
	maxBackups    = 3
	maxAgeDays    = 30
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	timestamps = false
}

// UseFile sends all log output to a size-rotated file at path, creating
// parent directories as needed. Lines are timestamped. The returned
// closer restores stderr output and closes the file.
func UseFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxFileSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	mu.Lock()
	output = file
	timestamps = true
	mu.Unlock()

	return closerFunc(func() error {
		SetOutput(os.Stderr)
		return file.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(true, "[DEBUG] ", format, args)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(true, "[INFO] ", format, args)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(true, "[WARN] ", format, args)
}

// Error prints an error message regardless of verbose mode.
// Failures that are not surfaced to the user are always recorded here.
func Error(format string, args ...any) {
	write(false, "[ERROR] ", format, args)
}

func write(gated bool, prefix, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if gated && !verbose {
		return
	}
	if timestamps {
		prefix = time.Now().Format(time.RFC3339) + " " + prefix
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
