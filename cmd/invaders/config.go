package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is resolved in order: --config, ~/.invaders/configs/invaders.yaml,
./configs/invaders.yaml, then the built-in defaults.

Examples:
  invaders config
  invaders config --defaults > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	os.Stdout.Write(data)
}
