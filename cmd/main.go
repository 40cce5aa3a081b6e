package main

import (
	"log/slog"
	"os"

	"github.com/Xordas/ScreenX/cmd/screenx"
	"github.com/Xordas/ScreenX/logging"
)

func main() {
	// Replaced once flags are parsed and the configured level is known.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelInfo)))

	screenx.Execute()
}
