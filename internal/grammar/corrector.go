package grammar

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tanasevich/engtutor/internal/llm"
)

// Correction is the model's review of one learner message.
type Correction struct {
	// Corrected is the rewritten message, equal to the input when
	// nothing needed fixing.
	Corrected string `json:"corrected"`

	// Notes explain the fixes in learner-friendly terms.
	Notes []string `json:"notes"`
}

// Clean reports whether the message needed no changes.
func (c *Correction) Clean() bool {
	return len(c.Notes) == 0
}

var correctionSchema = &llm.Schema{
	Name:        "grammar-correction",
	Description: "A grammar review of one learner message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"corrected": map[string]any{
				"type":        "string",
				"description": "The message with grammar mistakes fixed, identical to the input when already correct",
			},
			"notes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "One short note per fix in simple English, empty when nothing was fixed",
			},
		},
		"required":             []any{"corrected", "notes"},
		"additionalProperties": false,
	},
}

const correctorSystem = "You are a friendly English teacher reviewing a student's message. Fix grammar and word-choice mistakes without changing the meaning. Never comment on the content, only the language."

// LLMCorrector reviews talk-mode messages through a model provider.
type LLMCorrector struct {
	provider llm.Provider
}

// NewLLMCorrector builds a corrector on top of provider.
func NewLLMCorrector(provider llm.Provider) *LLMCorrector {
	return &LLMCorrector{provider: provider}
}

// Correct asks the model to review text. Callers treat any error as "no
// review available" and move on.
func (c *LLMCorrector) Correct(ctx context.Context, text string) (*Correction, error) {
	ctx = llm.WithPurpose(ctx, "grammar-correction")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: correctorSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Review this message:\n\n" + strings.TrimSpace(text)},
		},
		Schema:      correctionSchema,
		MaxTokens:   256,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var out Correction
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &out, nil
}
