// Command example serves the suite's local test site on a fixed port, so the
// pages can be inspected in a normal browser or driven manually with
// HEADLESS=false while debugging a test.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/akerstrom/webtest/internal/testsite"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	addr := ":1096"
	if v := os.Getenv("ADDR"); v != "" {
		addr = v
	}

	logger.Info("Starting test site", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, testsite.Handler(logger)); err != nil {
		logger.Error("Failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
