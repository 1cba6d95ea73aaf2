// Package studyplan produces the personalized weekly plan shown during
// onboarding. The model writes the plan when available; a deterministic
// builder covers the offline path so onboarding never stalls.
package studyplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/llm"
)

const planSystem = "You are an experienced English teacher designing a study plan. Write a concise weekly plan in Markdown: a short intro line, then one bullet per week with a clear focus and 2-3 concrete activities. Match the plan to the learner's levels and timeframe."

// Input describes the learner the plan is for.
type Input struct {
	Goal            string
	CurrentLevel    exercise.Level
	TargetLevel     exercise.Level
	TimeframeMonths int
}

// Planner builds study plans. A nil provider always uses the offline
// builder.
type Planner struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewPlanner builds a Planner. provider may be nil.
func NewPlanner(provider llm.Provider, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{provider: provider, logger: logger}
}

// Generate returns a Markdown study plan for the learner. Never fails;
// model errors degrade to the offline builder.
func (p *Planner) Generate(ctx context.Context, in Input) string {
	if p.provider != nil {
		if plan, err := p.generate(ctx, in); err == nil {
			return plan
		} else {
			p.logger.Warn("study plan generation failed, using offline plan",
				"error", err)
		}
	}
	return OfflinePlan(in)
}

func (p *Planner) generate(ctx context.Context, in Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "study-plan")

	user := fmt.Sprintf(
		"Learner goal: %s\nCurrent level: %s\nTarget level: %s\nTimeframe: %d months\n\nWrite the weekly plan.",
		in.Goal, in.CurrentLevel, in.TargetLevel, in.TimeframeMonths)

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:      planSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		MaxTokens:   1024,
		Temperature: 0.6,
	})
	if err != nil {
		return "", err
	}

	plan := strings.TrimSpace(string(resp.Content))
	if plan == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content}
	}
	return plan, nil
}

// focusRows are the recurring weekly emphases, cycled over the plan's
// weeks. Ordered from receptive to productive skills.
var focusRows = []struct {
	focus      string
	activities string
}{
	{"Vocabulary building", "learn 10 new words, use each in a sentence, review yesterday's words"},
	{"Reading comprehension", "read a short text, answer questions about it, retell it in your own words"},
	{"Grammar practice", "gap-filling exercises, rewrite incorrect sentences, note one rule that surprised you"},
	{"Writing", "write a short paragraph, check it for your common mistakes, expand it the next day"},
	{"Speaking and pronunciation", "read aloud for five minutes, record yourself, practice difficult sounds"},
}

// OfflinePlan builds a deterministic Markdown plan: four weeks per
// month, each week cycling through the focus rows.
func OfflinePlan(in Input) string {
	months := in.TimeframeMonths
	if months < 1 {
		months = 3
	}
	weeks := months * 4
	if weeks > 12 {
		weeks = 12
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your study plan: %s → %s over %d months.\n\n", in.CurrentLevel, in.TargetLevel, months)
	if in.Goal != "" {
		fmt.Fprintf(&b, "Goal: %s\n\n", in.Goal)
	}
	for w := 0; w < weeks; w++ {
		row := focusRows[w%len(focusRows)]
		fmt.Fprintf(&b, "- **Week %d — %s**: %s\n", w+1, row.focus, row.activities)
	}
	b.WriteString("\nPractice a little every day; short daily sessions beat long weekly ones.")
	return b.String()
}
