package exercise

import (
	"context"
	"strings"
)

// GenerateInput holds the context for one content generation request.
type GenerateInput struct {
	// Kind is the exercise kind to generate.
	Kind Kind

	// Level is the learner's CEFR level.
	Level Level

	// Topic is the learner's preferred topic, if any.
	Topic string

	// SystemPrompt overrides DefaultSystemPrompt when the learner's
	// profile carries a custom generator prompt.
	SystemPrompt string

	// RecentPrompts contains recently served exercise prompts, used for
	// deduplication in the request.
	RecentPrompts []string
}

// Payload is raw generated exercise content before rendering. Which
// fields are populated depends on the kind.
type Payload struct {
	Text            string   `json:"text"`
	Question        string   `json:"question"`
	Answers         []string `json:"answers"`
	Words           []string `json:"words"`
	PossibleAnswers []string `json:"possible_answers"`
	Topic           string   `json:"topic"`
}

// Generator produces exercise content using a generative model.
// Implementations return (nil, error) for any failure; the selector
// treats every error as "generation unavailable" and falls back to the
// static pools.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Payload, error)
}

// validatePayload checks a decoded payload against the structural rules
// for its kind. The JSON schema guarantees field presence and types;
// this enforces the cross-field rules a schema cannot express.
func validatePayload(kind Kind, p *Payload) bool {
	switch kind {
	case KindComprehension:
		return p.Text != "" && p.Question != "" && len(p.Answers) > 0
	case KindGapFilling:
		blanks := strings.Count(p.Text, "_____")
		return p.Text != "" && blanks > 0 && len(p.Answers) == blanks
	case KindSentenceFormation:
		return len(p.Words) > 0 && len(p.PossibleAnswers) > 0 && p.PossibleAnswers[0] != ""
	case KindParagraphWriting:
		return p.Topic != ""
	case KindPronunciation:
		return len(p.Words) > 0
	default:
		return false
	}
}
