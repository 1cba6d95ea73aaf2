package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanasevich/engtutor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt and generation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.Stats(context.Background())
		if err != nil {
			return err
		}

		if len(stats.Attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
		} else {
			fmt.Printf("%-22s  %-10s  %-10s  %s\n", "Kind", "Attempts", "Correct", "Accuracy")
			for _, a := range stats.Attempts {
				acc := 0.0
				if a.Attempts > 0 {
					acc = 100 * float64(a.Correct) / float64(a.Attempts)
				}
				fmt.Printf("%-22s  %-10d  %-10d  %.0f%%\n", a.Kind, a.Attempts, a.Correct, acc)
			}
		}

		if len(stats.LLM) > 0 {
			fmt.Printf("\n%-22s  %-10s  %-10s  %-12s  %s\n", "Purpose", "Requests", "Failures", "Tokens", "Avg ms")
			for _, l := range stats.LLM {
				fmt.Printf("%-22s  %-10d  %-10d  %-12d  %d\n",
					l.Purpose, l.Requests, l.Failures, l.TotalTokens, l.AvgLatencyMs)
			}
		}
		return nil
	},
}
