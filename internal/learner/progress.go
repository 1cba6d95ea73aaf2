package learner

import "github.com/tanasevich/engtutor/internal/exercise"

// RecordAttempt adds one completed attempt for kind, counting it as
// correct when correct is true. Every call increments the counters;
// callers decide what constitutes an attempt (a verdict with
// Counted=false is not one).
func (s *State) RecordAttempt(kind exercise.Kind, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.Completed++
	if correct {
		s.progress.Correct++
	}

	kp, ok := s.progress.ByKind[kind]
	if !ok {
		kp = &KindProgress{}
		s.progress.ByKind[kind] = kp
	}
	kp.Attempts++
	if correct {
		kp.Correct++
	}
}

// Accuracy returns the overall correct fraction, 0 before the first
// attempt.
func (s *State) Accuracy() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.progress.Completed == 0 {
		return 0
	}
	return float64(s.progress.Correct) / float64(s.progress.Completed)
}
