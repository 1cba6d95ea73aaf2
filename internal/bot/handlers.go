package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tanasevich/engtutor/internal/exercise"
)

func (b *Bot) handle(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	if msg.Voice != nil || msg.Audio != nil || msg.VideoNote != nil {
		b.reply(chatID, "Voice messages aren't supported yet. Please type your answer.")
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Menu buttons work from any stage.
	switch text {
	case btnStartLesson, btnNextExercise:
		b.startExercise(ctx, chatID, userID)
		return
	case btnTalk:
		b.startTalk(ctx, chatID, userID)
		return
	case btnStatistics:
		b.sendStatistics(chatID, userID)
		return
	case btnProgress:
		b.sendVocabulary(chatID, userID)
		return
	case btnPlan:
		b.sendPlan(ctx, chatID, userID)
		return
	case btnMainMenu:
		b.toMainMenu(chatID, userID)
		return
	}

	switch b.stageOf(userID) {
	case stageGoal, stageCurrentLevel, stageTargetLevel, stageTimeframe,
		stagePlanApproval, stageScheduleDays, stageScheduleTime:
		b.handleOnboarding(ctx, msg)
	case stageLesson:
		b.handleAnswer(ctx, msg)
	case stageTalk:
		b.handleTalk(ctx, msg)
	default:
		b.replyKeyboard(chatID, "Pick something from the menu to get going! 👇", mainMenuKeyboard())
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start":
		b.startOnboarding(chatID, userID, msg.From.FirstName)
	case "lesson", "start_lesson":
		b.startExercise(ctx, chatID, userID)
	case "talk":
		b.startTalk(ctx, chatID, userID)
	case "progress":
		b.sendStatistics(chatID, userID)
	case "vocabulary":
		b.sendVocabulary(chatID, userID)
	case "plan":
		b.sendPlan(ctx, chatID, userID)
	case "cancel":
		b.toMainMenu(chatID, userID)
	case "help":
		b.reply(chatID, helpText)
	default:
		b.reply(chatID, "I don't know that command. Try /help.")
	}
}

const helpText = `Here's what I can do:
/lesson — practice exercises at your level
/talk — have a free conversation in English
/progress — your statistics
/vocabulary — words you've learned
/plan — your study plan
/cancel — back to the main menu`

func (b *Bot) toMainMenu(chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	state.SetCurrent(nil)
	b.setStage(userID, stageIdle)
	b.replyKeyboard(chatID, "Back to the main menu. What's next?", mainMenuKeyboard())
}

func (b *Bot) sendStatistics(chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	p := state.Progress()

	if p.Completed == 0 {
		b.reply(chatID, "No exercises completed yet. Start a lesson and your statistics will appear here!")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Your statistics\n\nExercises completed: %d\nCorrect: %d (%.0f%%)\n",
		p.Completed, p.Correct, 100*float64(p.Correct)/float64(p.Completed))

	kinds := make([]exercise.Kind, 0, len(p.ByKind))
	for k := range p.ByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	if len(kinds) > 0 {
		sb.WriteString("\nBy exercise type:\n")
		for _, k := range kinds {
			kp := p.ByKind[k]
			fmt.Fprintf(&sb, "• %s: %d/%d\n", kindTitle(k), kp.Correct, kp.Attempts)
		}
	}
	fmt.Fprintf(&sb, "\nWords in your vocabulary: %d", state.VocabularyCount())

	b.reply(chatID, sb.String())
}

func (b *Bot) sendVocabulary(chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	words := state.Vocabulary()

	if len(words) == 0 {
		b.reply(chatID, "Your vocabulary list is empty so far. New words from your answers will appear here.")
		return
	}

	const maxShown = 50
	shown := words
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	text := fmt.Sprintf("📚 Your vocabulary (%d words):\n\n%s", len(words), strings.Join(shown, ", "))
	if len(words) > maxShown {
		text += fmt.Sprintf("\n\n...and %d more.", len(words)-maxShown)
	}
	b.reply(chatID, text)
}

func (b *Bot) sendPlan(ctx context.Context, chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	profile := state.Profile()

	if profile.Plan == "" {
		b.reply(chatID, "You don't have a study plan yet. Send /start to set one up.")
		return
	}
	b.replyMarkdown(chatID, profile.Plan)
}

func kindTitle(k exercise.Kind) string {
	switch k {
	case exercise.KindComprehension:
		return "Reading comprehension"
	case exercise.KindGapFilling:
		return "Gap filling"
	case exercise.KindSentenceFormation:
		return "Sentence formation"
	case exercise.KindParagraphWriting:
		return "Paragraph writing"
	case exercise.KindPronunciation:
		return "Pronunciation"
	default:
		return string(k)
	}
}
