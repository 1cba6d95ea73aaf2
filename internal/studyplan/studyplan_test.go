package studyplan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/llm"
)

var sampleInput = Input{
	Goal:            "pass a job interview in English",
	CurrentLevel:    exercise.LevelB1,
	TargetLevel:     exercise.LevelB2,
	TimeframeMonths: 2,
}

func TestGenerateFromModel(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("# Plan\n- Week 1: interviews vocabulary"),
	})
	p := NewPlanner(provider, nil)

	plan := p.Generate(context.Background(), sampleInput)
	if !strings.Contains(plan, "Week 1") {
		t.Errorf("plan = %q", plan)
	}

	req := provider.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "job interview") {
		t.Errorf("goal not forwarded: %q", req.Messages[0].Content)
	}
	if req.Schema != nil {
		t.Error("plan request should be free-form text, not structured")
	}
}

func TestGenerateFallsBackOffline(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("offline")})
	p := NewPlanner(provider, nil)

	plan := p.Generate(context.Background(), sampleInput)
	if !strings.Contains(plan, "Week 1") || !strings.Contains(plan, "Week 8") {
		t.Errorf("offline plan missing weeks:\n%s", plan)
	}
	if !strings.Contains(plan, "B1") || !strings.Contains(plan, "B2") {
		t.Errorf("offline plan missing levels:\n%s", plan)
	}
}

func TestOfflinePlanBounds(t *testing.T) {
	plan := OfflinePlan(Input{CurrentLevel: exercise.LevelA1, TargetLevel: exercise.LevelA2, TimeframeMonths: 6})
	if strings.Contains(plan, "Week 13") {
		t.Error("plan exceeds the twelve-week cap")
	}
	if !strings.Contains(plan, "Week 12") {
		t.Error("plan missing the final capped week")
	}

	// Zero timeframe gets the default.
	plan = OfflinePlan(Input{CurrentLevel: exercise.LevelA1, TargetLevel: exercise.LevelA2})
	if !strings.Contains(plan, "3 months") {
		t.Errorf("default timeframe not applied:\n%s", plan)
	}
}
