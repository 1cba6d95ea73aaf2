package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanasevich/engtutor/internal/exercise"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice exercises in the terminal",
	Long:  "Runs the exercise loop on stdin/stdout without Telegram. Useful for trying the tutor and for prompt tuning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		topic, _ := cmd.Flags().GetString("topic")

		logger := newQuietLogger()
		st, events := openEvents(cmd, logger)
		if st != nil {
			defer st.Close()
		}

		core := buildCore(events, logger)
		level := exercise.ParseLevel(levelFlag)
		state := core.Learners.Get(0)

		fmt.Printf("Practice session at level %s. Type 'quit' to stop.\n\n", level)

		scanner := bufio.NewScanner(os.Stdin)
		ctx := context.Background()
		for {
			spec := core.Selector.Select(ctx, level, &state.History, exercise.Hints{Topic: topic})

			fmt.Printf("--- %s ---\n%s\n> ", spec.Kind, spec.Prompt)
			if !scanner.Scan() {
				break
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "quit" || answer == "exit" {
				break
			}

			verdict := core.Checker.Check(spec, answer)
			fmt.Println(verdict.Feedback)
			fmt.Println()

			if verdict.Counted {
				state.RecordAttempt(spec.Kind, verdict.Correct)
			}
		}

		p := state.Progress()
		if p.Completed > 0 {
			fmt.Printf("\nSession done: %d/%d correct.\n", p.Correct, p.Completed)
		}
		return scanner.Err()
	},
}

func init() {
	practiceCmd.Flags().String("level", "B1", "CEFR level to practice at (A1-C2)")
	practiceCmd.Flags().String("topic", "", "Preferred topic for generated content")
}
