// Package learner holds per-user learning state: profile, progress
// counters, harvested vocabulary and the exercise history the selector
// reads. State lives in memory for the life of the process; the
// analytics event log is the only durable record.
package learner

import (
	"sync"

	"github.com/tanasevich/engtutor/internal/exercise"
)

// maxConversationTurns bounds the stored talk-mode history per learner.
const maxConversationTurns = 50

// Profile captures what the learner told us during onboarding.
type Profile struct {
	Name            string
	Goal            string
	CurrentLevel    exercise.Level
	TargetLevel     exercise.Level
	TimeframeMonths int

	// Topic biases generated exercise content, empty when the learner
	// never stated a preference.
	Topic string

	// SystemPrompt overrides the generator persona, set by power users
	// through the practice CLI. Empty means the default.
	SystemPrompt string

	// ScheduleDays and ScheduleHour drive study reminders.
	// ScheduleDays holds lowercase English weekday names.
	ScheduleDays []string
	ScheduleHour int

	PlanApproved bool
	Plan         string
}

// KindProgress counts attempts for one exercise kind.
type KindProgress struct {
	Attempts int
	Correct  int
}

// Progress accumulates the learner's attempt counters. Correct never
// exceeds Completed.
type Progress struct {
	Completed int
	Correct   int
	ByKind    map[exercise.Kind]*KindProgress
}

// Turn is one exchange in talk mode.
type Turn struct {
	FromLearner bool
	Text        string
}

// State is one learner's complete in-memory record. All access goes
// through the methods, which lock; the embedded exercise history carries
// its own lock so the selector can use it directly.
type State struct {
	ID int64

	// History is read and written by the exercise selector.
	History exercise.History

	mu           sync.Mutex
	profile      Profile
	progress     Progress
	vocabulary   map[string]bool
	conversation []Turn

	// current is the open exercise awaiting an answer, nil outside a
	// lesson.
	current *exercise.Spec
}

func newState(id int64) *State {
	return &State{
		ID:         id,
		vocabulary: make(map[string]bool),
		progress:   Progress{ByKind: make(map[exercise.Kind]*KindProgress)},
	}
}

// Profile returns a copy of the learner's profile.
func (s *State) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile
	p.ScheduleDays = append([]string(nil), s.profile.ScheduleDays...)
	return p
}

// UpdateProfile applies fn to the profile under the state lock.
func (s *State) UpdateProfile(fn func(*Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.profile)
}

// Level returns the learner's current CEFR level, DefaultLevel before
// onboarding sets one.
func (s *State) Level() exercise.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.CurrentLevel == "" {
		return exercise.DefaultLevel
	}
	return s.profile.CurrentLevel
}

// SetCurrent stores the open exercise; nil closes it.
func (s *State) SetCurrent(spec *exercise.Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = spec
}

// Current returns the open exercise, nil outside a lesson.
func (s *State) Current() *exercise.Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Progress returns a snapshot of the attempt counters.
func (s *State) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Progress{
		Completed: s.progress.Completed,
		Correct:   s.progress.Correct,
		ByKind:    make(map[exercise.Kind]*KindProgress, len(s.progress.ByKind)),
	}
	for k, v := range s.progress.ByKind {
		c := *v
		out.ByKind[k] = &c
	}
	return out
}

// AppendTurn records one talk-mode exchange, evicting the oldest when
// the history is full.
func (s *State) AppendTurn(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversation = append(s.conversation, turn)
	if len(s.conversation) > maxConversationTurns {
		s.conversation = s.conversation[len(s.conversation)-maxConversationTurns:]
	}
}

// Conversation returns a copy of the talk-mode history, oldest first.
func (s *State) Conversation() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.conversation))
	copy(out, s.conversation)
	return out
}
