package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/platform/headless"
	"github.com/vovakirdan/invaders/internal/storage"
)

var flagFrames int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the game loop headless and report FPS",
	Long: `Run the real loop (clock, input, simulation, composition) against an
offscreen backbuffer as fast as possible, then print the measured rate.

Examples:
  invaders bench
  invaders bench --frames 10000`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagFrames, "frames", 3000, "Number of loop iterations to run")
}

func runBench(_ *cobra.Command, _ []string) {
	if err := bench(os.Stdout); err != nil {
		fatal("%v", err)
	}
}

// bench runs the headless loop and writes the report to w.
func bench(w io.Writer) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	setup, err := loadGame()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	game := invaders.NewGame(setup.settings, logger)
	platform := headless.NewPlatform(flagFrames, nil)
	display := headless.NewDisplay(setup.settings.Logical, setup.sheet)

	if err := game.Run(platform, display); err != nil {
		return err
	}

	stats := game.Stats()
	sess := storage.Session{
		Frontend: "bench",
		User:     currentUser(),
		Frames:   int64(stats.Frames),
		PeakFPS:  stats.PeakFPS,
		Seconds:  stats.Seconds,
	}

	fmt.Fprintf(w, "Frames:   %d\n", sess.Frames)
	fmt.Fprintf(w, "Seconds:  %.3f\n", sess.Seconds)
	fmt.Fprintf(w, "Average:  %.1f fps\n", sess.AverageFPS())
	fmt.Fprintf(w, "Peak:     %d fps\n", sess.PeakFPS)

	if store := openStore(logger); store != nil {
		defer store.Close()
		if _, err := store.SaveSession(sess); err != nil {
			logger.Warn("could not record session", "err", err)
		}
	}
	return nil
}
