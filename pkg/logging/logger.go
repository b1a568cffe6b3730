// Package logging wires hclog for the toolkit and carries the debug hex
// dump helper the cipher demos use to show intermediate values.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Determine if JSON format should be used
	jsonFormat := os.Getenv("XORPAD_JSON_LOG") == "1"

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🔑 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("XORPAD_LOG_LEVEL")
	if level == "" {
		level = "warn" // Default to warn for production safety
	}
	return level
}

// Dump logs a labeled debug view of raw bytes. Values up to eight bytes are
// packed into one little-endian word and shown as a single hex number;
// longer buffers come out as a spaced hex row. Nothing is formatted unless
// the logger is at debug or lower.
func Dump(logger hclog.Logger, label string, data []byte) {
	if logger == nil || !logger.IsDebug() {
		return
	}

	if len(data) <= 8 {
		var packed uint64
		for i, b := range data {
			packed |= uint64(b) << (8 * i)
		}
		logger.Debug("🔍 "+label, "value", fmt.Sprintf("0x%x", packed), "size", len(data))
		return
	}

	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	logger.Debug("🔍 "+label, "bytes", sb.String(), "size", len(data))
}
