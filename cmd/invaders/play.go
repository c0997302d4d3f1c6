package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

The 224x256 playfield is scaled to fit the terminal using half-block
characters, two pixels per cell. A true-colour terminal is recommended.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Shoot
  Ctrl+S     - Save a text screenshot to ~/.invaders/screenshots
  Esc/Q      - Quit

Logs go to the --log file because the terminal shows the game.

Examples:
  invaders play
  invaders play --fps 30
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fatal("%v", err)
	}
}

// play runs the terminal game; deferred cleanup runs before any exit.
func play() error {
	setup, err := loadGame()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(tui.Options{
		Settings: setup.settings,
		Sheet:    setup.sheet,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: setup.cfg.Display.TickRate,
		},
		Store:  store,
		User:   currentUser(),
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game failed", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
