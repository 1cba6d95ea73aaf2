package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tanasevich/engtutor/internal/conversation"
	"github.com/tanasevich/engtutor/internal/learner"
)

func (b *Bot) startTalk(ctx context.Context, chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	profile := state.Profile()

	opening := b.core.Partner.Start(ctx, state.Level(), profile.Topic)
	state.AppendTurn(learner.Turn{FromLearner: false, Text: opening.Starter})
	b.setStage(userID, stageTalk)

	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
	)
	kb.ResizeKeyboard = true
	b.replyKeyboard(chatID, "💬 Let's talk! Topic: "+opening.Topic+"\n\n"+opening.Starter, kb)
}

func (b *Bot) handleTalk(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)
	state := b.core.Learners.Get(userID)

	state.AppendTurn(learner.Turn{FromLearner: true, Text: text})

	// Grammar review happens quietly alongside the reply; failures are
	// simply no review.
	if b.core.Corrector != nil {
		if review, err := b.core.Corrector.Correct(ctx, text); err == nil && !review.Clean() {
			b.reply(chatID, "✏️ Small correction: "+review.Corrected+"\n• "+strings.Join(review.Notes, "\n• "))
		}
	}

	history := make([]conversation.Exchange, 0, len(state.Conversation()))
	for _, turn := range state.Conversation() {
		history = append(history, conversation.Exchange{FromLearner: turn.FromLearner, Text: turn.Text})
	}

	reply := b.core.Partner.Reply(ctx, state.Level(), history)
	state.AppendTurn(learner.Turn{FromLearner: false, Text: reply})

	if fresh := state.HarvestVocabulary(text); len(fresh) > 0 {
		reply += "\n\n📚 New words: " + strings.Join(fresh, ", ")
	}
	b.reply(chatID, reply)
}
