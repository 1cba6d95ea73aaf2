// Package conversation implements the free-talk companion: it opens a
// topic at the learner's level and keeps replying even when no model is
// reachable.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/llm"
)

// Opening is a conversation kickoff: the topic and the first message.
type Opening struct {
	Topic   string `json:"topic"`
	Starter string `json:"starter"`
}

var openingSchema = &llm.Schema{
	Name:        "conversation-opening",
	Description: "A conversation topic and an opening message for an English learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "A short everyday topic, 2-5 words",
			},
			"starter": map[string]any{
				"type":        "string",
				"description": "A friendly opening message with one question, level-appropriate vocabulary",
			},
		},
		"required":             []any{"topic", "starter"},
		"additionalProperties": false,
	},
}

const starterSystem = "You are a friendly conversation partner for an English learner. Open a conversation on an everyday topic using vocabulary appropriate for the learner's level. Ask exactly one question."

// topicsByLevel are the offline topic banks.
var topicsByLevel = map[exercise.Level][]string{
	exercise.LevelA1: {"your family", "your favorite food", "your day", "pets", "the weather"},
	exercise.LevelA2: {"your hobbies", "your hometown", "weekend plans", "your best friend", "shopping"},
	exercise.LevelB1: {"travel experiences", "films and series", "your dream job", "healthy habits", "learning languages"},
	exercise.LevelB2: {"technology in daily life", "cultural differences", "memorable journeys", "work-life balance", "books that changed you"},
	exercise.LevelC1: {"social media and society", "environmental choices", "career ambitions", "art and creativity"},
	exercise.LevelC2: {"ethics of technology", "education reform", "globalization", "the future of work"},
}

// simpleStarters serve A1/A2 learners offline; the richer template suits
// B1 and above.
var simpleStarters = []string{
	"Let's talk about %s! What can you tell me about it?",
	"I want to hear about %s. Can you tell me something?",
}

var starters = []string{
	"Let's have a chat about %s. What's your experience with it?",
	"I'm curious about your thoughts on %s. Where would you start?",
	"Here's our topic: %s. What comes to mind first?",
}

// Partner opens and continues free-talk conversations. A nil provider
// degrades to the offline banks.
type Partner struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewPartner builds a Partner. provider may be nil.
func NewPartner(provider llm.Provider, logger *slog.Logger) *Partner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Partner{provider: provider, logger: logger}
}

// Start returns a conversation opening for the level, preferring the
// model and falling back to the offline banks. Never fails.
func (p *Partner) Start(ctx context.Context, level exercise.Level, preferred string) Opening {
	if p.provider != nil {
		if op, err := p.generateOpening(ctx, level, preferred); err == nil {
			return *op
		} else {
			p.logger.Warn("conversation opening generation failed, using banks",
				"level", level, "error", err)
		}
	}
	return offlineOpening(level, preferred)
}

func (p *Partner) generateOpening(ctx context.Context, level exercise.Level, preferred string) (*Opening, error) {
	ctx = llm.WithPurpose(ctx, "conversation-starter")

	user := fmt.Sprintf("Learner level: %s.", level)
	if preferred != "" {
		user += " Preferred topic area: " + preferred + "."
	}

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:      starterSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      openingSchema,
		MaxTokens:   256,
		Temperature: 0.9,
	})
	if err != nil {
		return nil, err
	}

	var op Opening
	if err := json.Unmarshal(resp.Content, &op); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if op.Topic == "" || op.Starter == "" {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content}
	}
	return &op, nil
}

func offlineOpening(level exercise.Level, preferred string) Opening {
	topic := preferred
	if topic == "" {
		bank, ok := topicsByLevel[level]
		if !ok {
			bank = topicsByLevel[exercise.DefaultLevel]
		}
		topic = bank[rand.IntN(len(bank))]
	}

	templates := starters
	if level == exercise.LevelA1 || level == exercise.LevelA2 {
		templates = simpleStarters
	}
	return Opening{
		Topic:   topic,
		Starter: fmt.Sprintf(templates[rand.IntN(len(templates))], topic),
	}
}
