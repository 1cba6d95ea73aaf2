package cmd

import (
	"log/slog"
	"os"
)

// newQuietLogger keeps interactive commands readable: warnings and
// errors only, on stderr.
func newQuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}
