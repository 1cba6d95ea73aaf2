// Package scheduler sends study reminders at the times learners picked
// during onboarding.
package scheduler

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/tanasevich/engtutor/internal/learner"
)

// Notifier delivers a reminder to one user. The bot implements this.
type Notifier interface {
	SendReminder(userID int64, text string)
}

// Scheduler runs an hourly pass over all learners and reminds those
// whose schedule matches the current day and hour.
type Scheduler struct {
	sched    *gocron.Scheduler
	learners *learner.Manager
	notifier Notifier
	logger   *slog.Logger
}

// New builds a Scheduler over the learner population.
func New(learners *learner.Manager, notifier Notifier, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		sched:    gocron.NewScheduler(time.Local),
		learners: learners,
		notifier: notifier,
		logger:   logger,
	}
}

// Start begins the hourly reminder job without blocking.
func (s *Scheduler) Start() {
	s.sched.Every(1).Hour().Do(s.remindDue)
	s.sched.StartAsync()
}

// Stop cancels all scheduled jobs.
func (s *Scheduler) Stop() {
	s.sched.Stop()
}

func (s *Scheduler) remindDue() {
	now := time.Now()
	day := strings.ToLower(now.Weekday().String())
	hour := now.Hour()

	for _, state := range s.learners.All() {
		profile := state.Profile()
		if !profile.PlanApproved || profile.ScheduleHour != hour {
			continue
		}
		if !containsDay(profile.ScheduleDays, day) {
			continue
		}
		s.logger.Info("sending study reminder", "user", state.ID)
		s.notifier.SendReminder(state.ID,
			"⏰ Time to practice your English! Send /lesson whenever you're ready.")
	}
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
