//go:build !nowindow && (cgo || windows || darwin)

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the 224x256 playfield, scaled up.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Shoot
  Esc        - Quit

Examples:
  invaders window
  invaders window --scale 4`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (0 = use config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := openWindow(); err != nil {
		fatal("%v", err)
	}
}

func openWindow() error {
	setup, err := loadGame()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	scale := setup.cfg.Display.WindowScale
	if flagScale > 0 {
		scale = flagScale
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(window.Options{
		Settings: setup.settings,
		Sheet:    setup.sheet,
		Scale:    scale,
		TickRate: setup.cfg.Display.TickRate,
		Store:    store,
		User:     currentUser(),
		Logger:   logger,
	})
}
