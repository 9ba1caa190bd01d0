// Package logger provides verbose logging for readtoml.
// When verbose mode is on, debug messages trace each step of the extraction.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Format selects how log lines are rendered.
type Format int

const (
	// FormatPlain writes "[LEVEL] message" lines.
	FormatPlain Format = iota
	// FormatActions writes GitHub Actions workflow commands (::debug::, ::warning::).
	FormatActions
)

// ParseFormat maps a config value to a Format. Unknown values fall back to plain.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "actions") {
		return FormatActions
	}
	return FormatPlain
}

var (
	mu      sync.RWMutex
	verbose bool
	format  Format
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetFormat sets how log lines are rendered.
func SetFormat(f Format) {
	mu.Lock()
	defer mu.Unlock()
	format = f
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(msgFormat string, args ...any) {
	write("DEBUG", "debug", msgFormat, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(msgFormat string, args ...any) {
	write("WARN", "warning", msgFormat, args...)
}

func write(level, command, msgFormat string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	msg := fmt.Sprintf(msgFormat, args...)
	if format == FormatActions {
		fmt.Fprintf(output, "::%s::%s\n", command, EscapeData(msg))
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, msg)
}

// EscapeData escapes a workflow command payload the way the Actions runner expects.
func EscapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// EscapeProperty escapes a workflow command property value.
func EscapeProperty(s string) string {
	s = EscapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}
