package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/sprites"
	"github.com/vovakirdan/invaders/internal/storage"
)

// gameSetup is everything a frontend needs to start a game.
type gameSetup struct {
	cfg      config.Config
	settings invaders.Settings
	sheet    *sprites.Sheet
}

// loadGame resolves the config, applies flag overrides and loads the sprite
// sheet. Any error is a fatal initialization failure.
func loadGame() (gameSetup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return gameSetup{}, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	sheet, err := loadSheet(cfg)
	if err != nil {
		return gameSetup{}, err
	}

	return gameSetup{
		cfg:      cfg,
		settings: invaders.SettingsFromConfig(cfg),
		sheet:    sheet,
	}, nil
}

// loadSheet loads the configured sheet, or the built-in one, and checks that
// it holds every sprite the game draws.
func loadSheet(cfg config.Config) (*sprites.Sheet, error) {
	size := cfg.Display.SpriteSize

	var sheet *sprites.Sheet
	if path := cfg.Assets.SpriteSheet; path != "" {
		s, err := sprites.Load(expandHome(path), size)
		if err != nil {
			return nil, err
		}
		sheet = s
	} else {
		if size != sprites.BuiltinCellSize {
			return nil, fmt.Errorf("built-in sprite sheet needs sprite_size %d, got %d", sprites.BuiltinCellSize, size)
		}
		sheet = sprites.Builtin()
	}

	if err := sheet.Require(invaders.SpriteCells()...); err != nil {
		return nil, err
	}
	return sheet, nil
}

// newLogger builds the process logger. Terminal frontends pass toFile because
// stdout is the game surface. The returned closer is never nil.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if toFile {
		path := expandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// openStore opens the session database. A failure only disables history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "err", err)
		return nil
	}
	return store
}

// currentUser names the local player for the session history.
func currentUser() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(k); u != "" {
			return u
		}
	}
	return ""
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// fatal reports an error and exits with status 1. Commands call it only from
// their cobra Run, after the body has returned and its defers have run.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
