package exercise

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// failingGenerator always errors, forcing pool fallback.
type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, GenerateInput) (*Payload, error) {
	return nil, errors.New("model offline")
}

// cannedGenerator returns a fixed payload and records the input.
type cannedGenerator struct {
	payload *Payload
	last    GenerateInput
}

func (g *cannedGenerator) Generate(_ context.Context, in GenerateInput) (*Payload, error) {
	g.last = in
	return g.payload, nil
}

func TestSelectNeverRepeatsKind(t *testing.T) {
	s := NewSelector(nil, time.Second, nil)
	hist := &History{}

	prev := Kind("")
	for i := 0; i < 50; i++ {
		spec := s.Select(context.Background(), LevelB1, hist, Hints{})
		if spec == nil {
			t.Fatal("Select returned nil")
		}
		if spec.Kind == prev {
			t.Fatalf("iteration %d repeated kind %s", i, spec.Kind)
		}
		prev = spec.Kind
	}
}

func TestSelectPoolFallbackOnGeneratorError(t *testing.T) {
	s := NewSelector(failingGenerator{}, time.Second, nil)
	hist := &History{}

	spec := s.Select(context.Background(), LevelA1, hist, Hints{ForceKind: KindGapFilling})
	if spec.Generated {
		t.Fatal("failed generation produced a generated spec")
	}
	if spec.Kind != KindGapFilling {
		t.Fatalf("kind = %s, want gap_filling", spec.Kind)
	}
	if len(spec.Expected) == 0 {
		t.Fatal("pool gap-filling spec has no expected answers")
	}
	if !strings.Contains(spec.Prompt, "Fill in the gaps") {
		t.Errorf("prompt %q missing gap instructions", spec.Prompt)
	}
}

func TestSelectAvoidsRecentPoolItems(t *testing.T) {
	s := NewSelector(nil, time.Second, nil)
	hist := &History{}

	// With one item already in the window, the next pick must take an
	// alternative while one exists.
	first := s.Select(context.Background(), LevelA1, hist, Hints{ForceKind: KindGapFilling})
	second := s.Select(context.Background(), LevelA1, hist, Hints{ForceKind: KindGapFilling})
	if first.ID == second.ID {
		t.Fatalf("back-to-back selections served the same item %s", first.ID)
	}
}

func TestSelectUsesGeneratedContent(t *testing.T) {
	gen := &cannedGenerator{payload: &Payload{
		Text:     "She _____ to school every day.",
		Answers:  []string{"walks"},
		Question: "",
	}}
	s := NewSelector(gen, time.Second, nil)
	hist := &History{}
	hist.Record(&Spec{ID: "x", Kind: KindComprehension, Prompt: "old prompt"})

	spec := s.Select(context.Background(), LevelB2, hist, Hints{
		ForceKind: KindGapFilling,
		Topic:     "school",
	})

	if !spec.Generated {
		t.Fatal("generated spec not flagged")
	}
	if !strings.HasPrefix(spec.ID, "gen/gap_filling/") {
		t.Errorf("id = %q, want gen/gap_filling/ prefix", spec.ID)
	}
	if !strings.Contains(spec.Prompt, "She _____ to school") {
		t.Errorf("prompt %q missing generated text", spec.Prompt)
	}
	if gen.last.Topic != "school" {
		t.Errorf("topic hint not forwarded, got %q", gen.last.Topic)
	}
	if len(gen.last.RecentPrompts) != 1 || gen.last.RecentPrompts[0] != "old prompt" {
		t.Errorf("recent prompts not forwarded: %v", gen.last.RecentPrompts)
	}
}

func TestSelectSentenceFormationCarriesReferenceSentence(t *testing.T) {
	s := NewSelector(nil, time.Second, nil)
	hist := &History{}

	spec := s.Select(context.Background(), LevelA1, hist, Hints{ForceKind: KindSentenceFormation})
	if len(spec.Expected) == 0 {
		t.Fatal("pool sentence-formation spec has no reference sentence")
	}
	if !strings.Contains(spec.Expected[0], " ") {
		t.Errorf("expected[0] = %q, want a full sentence", spec.Expected[0])
	}

	gen := &cannedGenerator{payload: &Payload{
		Words:           []string{"cat", "have"},
		PossibleAnswers: []string{"I have a cat"},
	}}
	s = NewSelector(gen, time.Second, nil)

	spec = s.Select(context.Background(), LevelA2, hist, Hints{ForceKind: KindSentenceFormation})
	if !spec.Generated {
		t.Fatal("generated spec not flagged")
	}
	if len(spec.Expected) == 0 || spec.Expected[0] != "I have a cat" {
		t.Errorf("expected = %v, want the generated reference sentence first", spec.Expected)
	}
}

func TestSelectPronunciationFromPool(t *testing.T) {
	s := NewSelector(nil, time.Second, nil)
	hist := &History{}

	spec := s.Select(context.Background(), LevelA2, hist, Hints{ForceKind: KindPronunciation})
	if !strings.Contains(spec.Prompt, "type 'done'") {
		t.Errorf("prompt %q missing completion instruction", spec.Prompt)
	}
	if len(spec.Expected) != 0 {
		t.Errorf("pronunciation spec carries expected answers: %v", spec.Expected)
	}
}

func TestHistoryWindow(t *testing.T) {
	hist := &History{}
	for i := 0; i < MaxRecent+4; i++ {
		hist.Record(&Spec{
			ID:     string(rune('a' + i)),
			Kind:   KindComprehension,
			Prompt: "p" + string(rune('a'+i)),
		})
	}

	ids := hist.RecentIDs()
	if len(ids) != MaxRecent {
		t.Fatalf("window size = %d, want %d", len(ids), MaxRecent)
	}
	if ids[0] != "e" || ids[len(ids)-1] != "l" {
		t.Errorf("window = %v, want oldest e through newest l", ids)
	}
	if hist.LastKind() != KindComprehension {
		t.Errorf("last kind = %s", hist.LastKind())
	}
}
