package exercise

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tanasevich/engtutor/internal/llm"
)

// LLMGenerator implements Generator using an llm.Provider. One attempt
// per request: failures propagate to the selector, which falls back to
// the static pools rather than retrying.
type LLMGenerator struct {
	provider llm.Provider
	config   GeneratorConfig
}

// NewLLMGenerator creates a generator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg GeneratorConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces raw exercise content for one kind and level.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Payload, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	schema, ok := Schemas[input.Kind]
	if !ok {
		return nil, fmt.Errorf("no schema for kind %q", input.Kind)
	}

	system := input.SystemPrompt
	if system == "" {
		system = DefaultSystemPrompt
	}

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exercise generation failed: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("parse generated content: %w", err)
	}

	if !validatePayload(input.Kind, &p) {
		return nil, fmt.Errorf("generated %s content failed structural validation", input.Kind)
	}

	return &p, nil
}
