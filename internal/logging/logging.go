// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a JSON structured logger at the given level and installs
// it as the slog default, so any library code logging through slog
// shares the same handler. A nil dest logs to stderr, keeping stdout
// free for command output.
func New(level string, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}

	logLevel := slog.LevelInfo
	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevel = slog.LevelDebug
	case "WARN":
		logLevel = slog.LevelWarn
	case "ERROR":
		logLevel = slog.LevelError
	}

	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Rename the time key to "timestamp".
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
