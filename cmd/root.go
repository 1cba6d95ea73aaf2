package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanasevich/engtutor/internal/bot"
	"github.com/tanasevich/engtutor/internal/conversation"
	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/grammar"
	"github.com/tanasevich/engtutor/internal/learner"
	"github.com/tanasevich/engtutor/internal/llm"
	"github.com/tanasevich/engtutor/internal/scheduler"
	"github.com/tanasevich/engtutor/internal/store"
	"github.com/tanasevich/engtutor/internal/studyplan"
)

var rootCmd = &cobra.Command{
	Use:   "engtutor",
	Short: "Adaptive English tutor bot",
	Long:  "Engtutor — Telegram bot that teaches English with adaptive exercises, free conversation and personalized study plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ENGTUTOR_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ENGTUTOR_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEvents opens the analytics store. A broken store degrades to nil
// events rather than refusing to start.
func openEvents(cmd *cobra.Command, logger *slog.Logger) (*store.Store, store.EventRepo) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		logger.Warn("analytics store disabled", "error", err)
		return nil, nil
	}
	s, err := store.Open(dbPath)
	if err != nil {
		logger.Warn("analytics store disabled", "error", err)
		return nil, nil
	}
	return s, s.Events()
}

// buildCore assembles the domain collaborators shared by the bot and
// the practice command.
func buildCore(events store.EventRepo, logger *slog.Logger) bot.Core {
	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider = llm.NewLazyProvider(cfg, events)
		logger.Info("generation enabled", "provider", cfg.Provider)
	} else {
		logger.Info("no model API key found, running fully offline")
	}

	var gen exercise.Generator
	var corrector *grammar.LLMCorrector
	if provider != nil {
		gen = exercise.NewLLMGenerator(provider, exercise.DefaultGeneratorConfig())
		corrector = grammar.NewLLMCorrector(provider)
	}

	return bot.Core{
		Learners:  learner.NewManager(),
		Selector:  exercise.NewSelector(gen, 20*time.Second, logger),
		Checker:   exercise.NewChecker(exercise.DefaultCheckConfig(), grammar.NewHeuristicAnalyzer()),
		Partner:   conversation.NewPartner(provider, logger),
		Planner:   studyplan.NewPlanner(provider, logger),
		Corrector: corrector,
		Events:    events,
	}
}

func runBot(cmd *cobra.Command) error {
	logger := slog.Default()

	st, events := openEvents(cmd, logger)
	if st != nil {
		defer st.Close()
	}

	core := buildCore(events, logger)

	cfg := bot.ConfigFromEnv()
	b, err := bot.New(cfg, core, logger)
	if err != nil {
		return err
	}

	sched := scheduler.New(core.Learners, b, logger)
	sched.Start()
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("bot started")
	if err := b.Run(ctx, cfg.PollTimeout); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("bot stopped")
	return nil
}
