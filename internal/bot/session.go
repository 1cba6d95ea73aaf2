package bot

// stage is where a user currently is in the conversation with the bot.
type stage int

const (
	stageIdle stage = iota

	// Onboarding, in order.
	stageGoal
	stageCurrentLevel
	stageTargetLevel
	stageTimeframe
	stagePlanApproval
	stageScheduleDays
	stageScheduleTime

	// Active modes.
	stageLesson
	stageTalk
)

// session is the transport-level state for one user: which stage the
// conversation is in. Learning state lives in the learner package; this
// only tracks the dialogue position.
type session struct {
	stage stage
}

func (b *Bot) setStage(userID int64, st stage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[userID]
	if !ok {
		s = &session{}
		b.sessions[userID] = s
	}
	s.stage = st
}

func (b *Bot) stageOf(userID int64) stage {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sessions[userID]; ok {
		return s.stage
	}
	return stageIdle
}
