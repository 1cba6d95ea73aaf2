package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the generation provider",
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the configured provider can generate an exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no model API key found in the environment")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ctx = llm.WithPurpose(ctx, "ping")

		provider, err := llm.NewProvider(ctx, cfg, nil)
		if err != nil {
			return err
		}

		gen := exercise.NewLLMGenerator(provider, exercise.DefaultGeneratorConfig())
		start := time.Now()
		payload, err := gen.Generate(ctx, exercise.GenerateInput{
			Kind:  exercise.KindGapFilling,
			Level: exercise.LevelB1,
		})
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		fmt.Printf("Provider %s (%s) responded in %s.\n", cfg.Provider, provider.ModelID(), time.Since(start).Round(time.Millisecond))
		fmt.Printf("Sample exercise: %s\nAnswers: %v\n", payload.Text, payload.Answers)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmPingCmd)
}
