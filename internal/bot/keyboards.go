package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tanasevich/engtutor/internal/exercise"
)

// Menu button labels. The checker also knows these so that a stray tap
// during an exercise is never graded as an answer.
const (
	btnStartLesson  = "🎯 Start Lesson"
	btnNextExercise = "🎯 Next Exercise"
	btnTalk         = "💬 Let's Talk"
	btnStatistics   = "📊 My Statistics"
	btnProgress     = "📚 My Progress"
	btnMainMenu     = "🏠 Main Menu"
	btnPlan         = "🗓 My Plan"

	btnApprove = "✅ Looks good"
	btnRedo    = "🔄 Make another"
	btnDone    = "✔️ Done"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnStartLesson),
			tgbotapi.NewKeyboardButton(btnTalk),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnStatistics),
			tgbotapi.NewKeyboardButton(btnProgress),
			tgbotapi.NewKeyboardButton(btnPlan),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func lessonKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNextExercise),
			tgbotapi.NewKeyboardButton(btnMainMenu),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func levelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, 2)
	row := make([]tgbotapi.KeyboardButton, 0, 3)
	for _, l := range exercise.Levels {
		row = append(row, tgbotapi.NewKeyboardButton(string(l)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func planApprovalKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnApprove),
			tgbotapi.NewKeyboardButton(btnRedo),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func scheduleDaysKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Mon, Wed, Fri"),
			tgbotapi.NewKeyboardButton("Tue, Thu"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Sat, Sun"),
			tgbotapi.NewKeyboardButton("Every day"),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}
