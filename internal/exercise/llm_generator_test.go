package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tanasevich/engtutor/internal/llm"
)

func TestLLMGeneratorGapFilling(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text": "He _____ football on _____ afternoons.", "answers": ["plays", "Saturday"]}`),
	})
	g := NewLLMGenerator(provider, DefaultGeneratorConfig())

	p, err := g.Generate(context.Background(), GenerateInput{
		Kind:  KindGapFilling,
		Level: LevelA2,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(p.Answers) != 2 || p.Answers[0] != "plays" {
		t.Errorf("answers = %v", p.Answers)
	}

	req := provider.Calls[0]
	if req.Schema == nil {
		t.Error("request has no schema")
	}
	if len(req.Messages) == 0 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
	if req.System != DefaultSystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
}

func TestLLMGeneratorRejectsMismatchedGaps(t *testing.T) {
	// Two blanks but three answers: structurally invalid.
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text": "He _____ football on _____ afternoons.", "answers": ["plays", "Saturday", "every"]}`),
	})
	g := NewLLMGenerator(provider, DefaultGeneratorConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Kind: KindGapFilling, Level: LevelA2})
	if err == nil {
		t.Fatal("mismatched gap count accepted")
	}
}

func TestLLMGeneratorProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	g := NewLLMGenerator(provider, DefaultGeneratorConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Kind: KindParagraphWriting, Level: LevelB1})
	if err == nil {
		t.Fatal("provider error swallowed")
	}
}

func TestLLMGeneratorDedupSection(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topic": "a memorable journey"}`),
	})
	g := NewLLMGenerator(provider, DefaultGeneratorConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Kind:          KindParagraphWriting,
		Level:         LevelB2,
		RecentPrompts: []string{"Write a short paragraph about: your hobby\n\nYour paragraph:"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	msg := provider.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "your hobby") {
		t.Errorf("user message does not mention the recent prompt:\n%s", msg)
	}
}
