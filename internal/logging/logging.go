// Package logging configures the process-wide zerolog logger for the
// CLI. Output goes to stderr so resolved configuration on stdout stays
// machine-readable.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup creates a console logger at the requested verbosity. Accepted
// levels are the zerolog names plus "quiet" as an alias for disabled.
func Setup(verbosity string) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	switch strings.ToLower(verbosity) {
	case "":
	case "quiet":
		level = zerolog.Disabled
	default:
		parsed, err := zerolog.ParseLevel(strings.ToLower(verbosity))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	return logger, nil
}
