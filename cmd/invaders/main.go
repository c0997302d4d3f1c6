// invaders is a Space Invaders prototype that runs in a terminal, a desktop
// window, or over SSH.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window (needs cgo on Linux)
//	invaders serve           - Start SSH server for remote play
//	invaders bench           - Run the loop headless and report FPS
//	invaders runs            - Browse recorded sessions
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search order, then built-in)
//	--fps <rate>    - Override the configured tick rate
//	--db <path>     - Session database (default: ~/.invaders/sessions.db)
//	--log <path>    - Log file for terminal frontends (default: ~/.invaders/invaders.log)
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders - a fixed-resolution arcade prototype",
	Long: `Space Invaders renders a 224x256 playfield with a player ship and a
grid of waving aliens, in your terminal, a desktop window, or over SSH.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  bench    - Run the loop headless and report FPS
  runs     - Browse recorded sessions
  config   - Print the effective configuration

Examples:
  invaders play
  invaders window --scale 4
  invaders serve --ssh :2222
  invaders bench --frames 5000
  invaders config > ~/.invaders/configs/invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.invaders/invaders.log", "Log file for terminal frontends")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
