package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickfield/internal/storage"
)

var (
	flagLimit int
	flagReset bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded session statistics",
	Long: `Display the most recent sessions and the totals over all sessions.

Examples:
  clickfield stats
  clickfield stats --limit 25
  clickfield stats --reset`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent sessions to show")
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded sessions")
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("error opening sessions database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("All sessions deleted.")
		return nil
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving sessions: %w", err)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'clickfield play' to start one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %7s  %7s  %6s  %7s  %8s\n",
		"Date", "User", "Spawned", "Squares", "Rounds", "Removed", "Duration")
	fmt.Printf("  %-16s  %-12s  %7s  %7s  %6s  %7s  %8s\n",
		"----", "----", "-------", "-------", "------", "-------", "--------")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %7d  %7d  %6d  %7d  %8s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.User,
			s.Spawned, s.Squares, s.Rounds, s.Removed,
			time.Duration(s.Duration)*time.Second,
		)
	}

	totals, err := store.Totals()
	if err != nil {
		return fmt.Errorf("error computing totals: %w", err)
	}

	fmt.Println()
	fmt.Printf("Total: %d sessions, %d shapes spawned (%d squares, %d rounds), %d removed\n",
		totals.Sessions, totals.Spawned, totals.Squares, totals.Rounds, totals.Removed)
	return nil
}
