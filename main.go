package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/tanasevich/engtutor/cmd"
)

func main() {
	// A .env alongside the binary is convenient in development; absence
	// is not an error.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := cmd.Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
