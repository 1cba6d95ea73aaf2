package conversation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/llm"
)

const replySystem = "You are a friendly conversation partner helping someone practice English. Reply naturally in 1-3 sentences at the learner's level and keep the conversation going with a question. Do not correct grammar; a separate reviewer handles that."

// Exchange is one prior turn passed to Reply for context.
type Exchange struct {
	FromLearner bool
	Text        string
}

// Reply continues the conversation given the recent history, the
// learner's latest message last. Falls back to canned contextual replies
// when the model is unreachable. Never fails.
func (p *Partner) Reply(ctx context.Context, level exercise.Level, history []Exchange) string {
	if p.provider != nil {
		if reply, err := p.generateReply(ctx, level, history); err == nil {
			return reply
		} else {
			p.logger.Warn("conversation reply generation failed, using canned reply",
				"level", level, "error", err)
		}
	}
	return cannedReply(lastLearnerText(history))
}

func (p *Partner) generateReply(ctx context.Context, level exercise.Level, history []Exchange) (string, error) {
	ctx = llm.WithPurpose(ctx, "conversation-reply")

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("(The learner's level is %s. The conversation so far follows.)", level),
	})
	for _, ex := range history {
		role := llm.RoleAssistant
		if ex.FromLearner {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: ex.Text})
	}

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:      replySystem,
		Messages:    messages,
		MaxTokens:   256,
		Temperature: 0.9,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(strings.Trim(string(resp.Content), `"`))
	if reply == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content}
	}
	return reply, nil
}

// cannedReply keeps the conversation alive offline with a reaction keyed
// to surface features of the learner's message.
func cannedReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "?"):
		return "That's a good question! I'd love to hear what you think about it first."
	case strings.Contains(lower, "like") || strings.Contains(lower, "love") || strings.Contains(lower, "enjoy"):
		return "It sounds like you really enjoy that! How often do you get to do it?"
	case strings.Contains(lower, "don't") || strings.Contains(lower, "not") || strings.Contains(lower, "never"):
		return "Interesting, not everyone feels the same way. What would change your mind?"
	case len(strings.Fields(text)) <= 3:
		return "Tell me more! Can you describe it in a few sentences?"
	default:
		return generics[rand.IntN(len(generics))]
	}
}

var generics = []string{
	"That's really interesting! What happened next?",
	"I see what you mean. How did that make you feel?",
	"Nice! Could you give me an example?",
	"Great point. Why do you think that is?",
}

func lastLearnerText(history []Exchange) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].FromLearner {
			return history[i].Text
		}
	}
	return ""
}
