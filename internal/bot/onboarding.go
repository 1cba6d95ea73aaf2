package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/learner"
	"github.com/tanasevich/engtutor/internal/studyplan"
)

func (b *Bot) startOnboarding(chatID, userID int64, firstName string) {
	state := b.core.Learners.Get(userID)

	if state.Profile().PlanApproved {
		b.replyKeyboard(chatID,
			fmt.Sprintf("Welcome back, %s! Ready to continue?", firstName),
			mainMenuKeyboard())
		b.setStage(userID, stageIdle)
		return
	}

	state.UpdateProfile(func(p *learner.Profile) { p.Name = firstName })
	b.setStage(userID, stageGoal)
	b.reply(chatID, fmt.Sprintf(
		"Hi %s! I'm your English tutor. 👋\n\nLet's set things up. First: why are you learning English? (work, travel, exams, moving abroad...)",
		firstName))
}

func (b *Bot) handleOnboarding(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)
	state := b.core.Learners.Get(userID)

	switch b.stageOf(userID) {
	case stageGoal:
		state.UpdateProfile(func(p *learner.Profile) { p.Goal = text })
		b.setStage(userID, stageCurrentLevel)
		b.replyKeyboard(chatID, "Got it! What's your current English level?", levelKeyboard())

	case stageCurrentLevel:
		level := exercise.ParseLevel(text)
		state.UpdateProfile(func(p *learner.Profile) { p.CurrentLevel = level })
		b.setStage(userID, stageTargetLevel)
		b.replyKeyboard(chatID, "And what level do you want to reach?", levelKeyboard())

	case stageTargetLevel:
		level := exercise.ParseLevel(text)
		state.UpdateProfile(func(p *learner.Profile) { p.TargetLevel = level })
		b.setStage(userID, stageTimeframe)
		b.reply(chatID, "In how many months would you like to get there? (e.g. 3)")

	case stageTimeframe:
		months := parseMonths(text)
		state.UpdateProfile(func(p *learner.Profile) { p.TimeframeMonths = months })
		b.sendDraftPlan(ctx, chatID, userID)

	case stagePlanApproval:
		switch text {
		case btnApprove:
			state.UpdateProfile(func(p *learner.Profile) { p.PlanApproved = true })
			b.setStage(userID, stageScheduleDays)
			b.replyKeyboard(chatID, "Great! Which days do you want to study?", scheduleDaysKeyboard())
		case btnRedo:
			b.sendDraftPlan(ctx, chatID, userID)
		default:
			b.replyKeyboard(chatID, "Please choose one of the options below.", planApprovalKeyboard())
		}

	case stageScheduleDays:
		days := parseScheduleDays(text)
		if len(days) == 0 {
			b.replyKeyboard(chatID, "I didn't catch any days there. Try e.g. \"Mon, Wed, Fri\".", scheduleDaysKeyboard())
			return
		}
		state.UpdateProfile(func(p *learner.Profile) { p.ScheduleDays = days })
		b.setStage(userID, stageScheduleTime)
		b.reply(chatID, "At what hour should I remind you? (0-23, e.g. 19)")

	case stageScheduleTime:
		hour, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || hour < 0 || hour > 23 {
			b.reply(chatID, "Please send an hour between 0 and 23.")
			return
		}
		state.UpdateProfile(func(p *learner.Profile) { p.ScheduleHour = hour })
		b.setStage(userID, stageIdle)
		b.replyKeyboard(chatID,
			fmt.Sprintf("All set! I'll remind you at %d:00 on your study days. Let's start with a lesson whenever you're ready. 🚀", hour),
			mainMenuKeyboard())
	}
}

func (b *Bot) sendDraftPlan(ctx context.Context, chatID, userID int64) {
	state := b.core.Learners.Get(userID)
	profile := state.Profile()

	plan := b.core.Planner.Generate(ctx, studyplan.Input{
		Goal:            profile.Goal,
		CurrentLevel:    profile.CurrentLevel,
		TargetLevel:     profile.TargetLevel,
		TimeframeMonths: profile.TimeframeMonths,
	})
	state.UpdateProfile(func(p *learner.Profile) { p.Plan = plan })

	b.replyMarkdown(chatID, plan)
	b.setStage(userID, stagePlanApproval)
	b.replyKeyboard(chatID, "How does this plan look?", planApprovalKeyboard())
}

// parseMonths extracts a month count from free-form input, defaulting
// to 3.
func parseMonths(text string) int {
	for _, f := range strings.Fields(text) {
		if n, err := strconv.Atoi(strings.Trim(f, ".,!")); err == nil && n >= 1 && n <= 24 {
			return n
		}
	}
	return 3
}

var weekdayNames = map[string]string{
	"mon": "monday", "monday": "monday",
	"tue": "tuesday", "tuesday": "tuesday",
	"wed": "wednesday", "wednesday": "wednesday",
	"thu": "thursday", "thursday": "thursday",
	"fri": "friday", "friday": "friday",
	"sat": "saturday", "saturday": "saturday",
	"sun": "sunday", "sunday": "sunday",
}

var allDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// parseScheduleDays turns free-form day input into lowercase weekday
// names. "Every day" selects all seven.
func parseScheduleDays(text string) []string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "every day") || strings.Contains(lower, "everyday") || strings.Contains(lower, "daily") {
		return append([]string(nil), allDays...)
	}

	seen := make(map[string]bool)
	var days []string
	for _, f := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	}) {
		if day, ok := weekdayNames[f]; ok && !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days
}
