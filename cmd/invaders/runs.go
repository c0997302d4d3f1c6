package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/platform/tui"
	"github.com/vovakirdan/invaders/internal/storage"
)

var (
	flagRunsLimit    int
	flagRunsFrontend string
	flagRunsPlain    bool
	flagRunsClear    bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded sessions",
	Long: `Show the most recent recorded sessions.

In a terminal this opens an interactive table with a tab per frontend.
With --plain, or when output is not a terminal, prints a text listing.

Examples:
  invaders runs
  invaders runs --plain --frontend bench --limit 5
  invaders runs --clear --frontend bench`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of sessions to list in plain mode")
	runsCmd.Flags().StringVar(&flagRunsFrontend, "frontend", "", "Only list sessions from this frontend in plain mode")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain listing instead of the interactive table")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete recorded sessions (all, or only --frontend)")
}

func runRuns(_ *cobra.Command, _ []string) {
	if err := listRuns(); err != nil {
		fatal("%v", err)
	}
}

func listRuns() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearSessions(flagRunsFrontend); err != nil {
			return err
		}
		fmt.Println("Sessions cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	sessions, err := store.RecentSessions(flagRunsFrontend, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-5s  %-9s  %-10s  %-8s  %-5s  %-6s  %s\n", "#", "Frontend", "User", "Frames", "Peak", "Avg", "Date")
	fmt.Printf("  %-5s  %-9s  %-10s  %-8s  %-5s  %-6s  %s\n", "-", "--------", "----", "------", "----", "---", "----")
	for _, s := range sessions {
		fmt.Printf("  %-5d  %-9s  %-10s  %-8d  %-5d  %-6.1f  %s\n",
			s.ID, s.Frontend, s.User, s.Frames, s.PeakFPS, s.AverageFPS(), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagRunsFrontend != "" {
		if peak, err := store.BestPeakFPS(flagRunsFrontend); err == nil {
			fmt.Println()
			fmt.Printf("Best peak: %d fps\n", peak)
		}
	}
	return nil
}
