package learner

import (
	"sync"
	"testing"

	"github.com/tanasevich/engtutor/internal/exercise"
)

func TestManagerCreateOnFirstContact(t *testing.T) {
	m := NewManager()

	if m.Known(42) {
		t.Fatal("unknown id reported as known")
	}

	s := m.Get(42)
	if s == nil || s.ID != 42 {
		t.Fatalf("Get(42) = %+v", s)
	}
	if !m.Known(42) {
		t.Fatal("id not known after Get")
	}
	if m.Get(42) != s {
		t.Fatal("second Get returned a different state")
	}
}

func TestManagerConcurrentGet(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	states := make([]*State, 16)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = m.Get(7)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(states); i++ {
		if states[i] != states[0] {
			t.Fatal("concurrent Get produced distinct states for one id")
		}
	}
}

func TestRecordAttempt(t *testing.T) {
	s := newState(1)

	s.RecordAttempt(exercise.KindGapFilling, true)
	s.RecordAttempt(exercise.KindGapFilling, false)
	s.RecordAttempt(exercise.KindComprehension, true)

	p := s.Progress()
	if p.Completed != 3 || p.Correct != 2 {
		t.Fatalf("progress = %d/%d, want 2/3", p.Correct, p.Completed)
	}
	gap := p.ByKind[exercise.KindGapFilling]
	if gap.Attempts != 2 || gap.Correct != 1 {
		t.Errorf("gap progress = %+v", gap)
	}
	if got := s.Accuracy(); got < 0.66 || got > 0.67 {
		t.Errorf("accuracy = %.3f", got)
	}

	// Same answer checked twice counts twice.
	s.RecordAttempt(exercise.KindComprehension, true)
	if got := s.Progress().Completed; got != 4 {
		t.Errorf("completed = %d after repeat, want 4", got)
	}
}

func TestHarvestVocabulary(t *testing.T) {
	s := newState(1)

	fresh := s.HarvestVocabulary("I went to the beautiful garden with my grandmother.")
	want := []string{"beautiful", "garden", "grandmother"}
	if len(fresh) != len(want) {
		t.Fatalf("fresh = %v, want %v", fresh, want)
	}
	for i := range want {
		if fresh[i] != want[i] {
			t.Fatalf("fresh = %v, want %v", fresh, want)
		}
	}

	// Already-known words are not reported again.
	fresh = s.HarvestVocabulary("The garden was beautiful.")
	if len(fresh) != 0 {
		t.Errorf("second harvest = %v, want none", fresh)
	}
	if s.VocabularyCount() != 3 {
		t.Errorf("count = %d, want 3", s.VocabularyCount())
	}
}

func TestHarvestVocabularySkipsShortAndStopWords(t *testing.T) {
	s := newState(1)

	fresh := s.HarvestVocabulary("it is so big and the cat ran")
	if len(fresh) != 0 {
		t.Errorf("harvest of short words = %v, want none", fresh)
	}

	fresh = s.HarvestVocabulary("because they went there")
	if len(fresh) != 0 {
		t.Errorf("harvest of stop words = %v, want none", fresh)
	}
}

func TestConversationCap(t *testing.T) {
	s := newState(1)
	for i := 0; i < maxConversationTurns+10; i++ {
		s.AppendTurn(Turn{FromLearner: i%2 == 0, Text: "t"})
	}
	if got := len(s.Conversation()); got != maxConversationTurns {
		t.Errorf("conversation length = %d, want %d", got, maxConversationTurns)
	}
}

func TestLevelDefaultsBeforeOnboarding(t *testing.T) {
	s := newState(1)
	if s.Level() != exercise.DefaultLevel {
		t.Errorf("level = %s, want %s", s.Level(), exercise.DefaultLevel)
	}

	s.UpdateProfile(func(p *Profile) { p.CurrentLevel = exercise.LevelA2 })
	if s.Level() != exercise.LevelA2 {
		t.Errorf("level = %s after update", s.Level())
	}
}
