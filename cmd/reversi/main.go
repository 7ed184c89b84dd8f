package main

import (
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Jesse-Na/reversi/internal/config"
	"github.com/Jesse-Na/reversi/internal/console"
	"github.com/Jesse-Na/reversi/internal/logging"
	"github.com/Jesse-Na/reversi/internal/reversi"
	"github.com/Jesse-Na/reversi/internal/tui"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var logOut io.Writer = os.Stderr
	if cfg.UI == config.UITUI {
		// stderr would draw over the screen.
		logOut = io.Discard
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)

	switch cfg.UI {
	case config.UITUI:
		ui := tui.New(tui.WithLogger(logger), tui.WithHints(cfg.ShowHints))
		if err := ui.Run(); err != nil {
			log.Fatalf("UI failed: %v", err)
		}
	default:
		g := reversi.NewGame(reversi.WithLogger(logger))
		c := console.New(os.Stdin, os.Stdout, console.WithLogger(logger))
		if _, err := c.Run(g); err != nil {
			logger.Error("game aborted", "game_id", g.ID(), "err", err)
			os.Exit(1)
		}
	}
}
