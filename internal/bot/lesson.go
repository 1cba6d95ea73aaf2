package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/store"
)

func (b *Bot) startExercise(ctx context.Context, chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	profile := state.Profile()

	spec := b.core.Selector.Select(ctx, state.Level(), &state.History, exercise.Hints{
		Topic:        profile.Topic,
		SystemPrompt: profile.SystemPrompt,
	})
	state.SetCurrent(spec)
	b.setStage(userID, stageLesson)

	header := fmt.Sprintf("✏️ %s (%s)\n\n", kindTitle(spec.Kind), spec.Level)
	b.replyKeyboard(chatID, header+spec.Prompt, lessonKeyboard())
}

func (b *Bot) handleAnswer(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	state := b.core.Learners.Get(userID)

	spec := state.Current()
	if spec == nil {
		b.startExercise(ctx, chatID, userID)
		return
	}

	answer := strings.TrimSpace(msg.Text)
	verdict := b.core.Checker.Check(spec, answer)
	b.reply(chatID, verdict.Feedback)

	if !verdict.Counted {
		return
	}

	state.RecordAttempt(spec.Kind, verdict.Correct)
	state.SetCurrent(nil)
	b.recordAttemptEvent(ctx, userID, spec, verdict.Correct)

	// Free-form answers feed the vocabulary tracker.
	if spec.Kind == exercise.KindParagraphWriting || spec.Kind == exercise.KindSentenceFormation {
		if fresh := state.HarvestVocabulary(answer); len(fresh) > 0 {
			b.reply(chatID, fmt.Sprintf("📚 New words added to your vocabulary: %s", strings.Join(fresh, ", ")))
		}
	}

	b.replyKeyboard(chatID, "Ready for the next one?", lessonKeyboard())
}

func (b *Bot) recordAttemptEvent(ctx context.Context, userID int64, spec *exercise.Spec, correct bool) {
	if b.core.Events == nil {
		return
	}
	err := b.core.Events.AppendAttempt(ctx, store.AttemptEvent{
		UserID:     userID,
		ExerciseID: spec.ID,
		Kind:       string(spec.Kind),
		Level:      string(spec.Level),
		Generated:  spec.Generated,
		Correct:    correct,
	})
	if err != nil {
		b.logger.Warn("attempt event not recorded", "user", userID, "error", err)
	}
}
