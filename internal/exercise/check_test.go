package exercise

import (
	"strings"
	"testing"
)

func newTestChecker() *Checker {
	return NewChecker(DefaultCheckConfig(), nil)
}

func TestCheckBlankAndNavigation(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindComprehension, Expected: []string{"market"}}

	for _, answer := range []string{"", "   ", "🏠 Main Menu", "/start_lesson", "📊 My Statistics"} {
		v := c.Check(spec, answer)
		if v.Counted {
			t.Errorf("Check(%q) counted as an attempt", answer)
		}
		if v.Correct {
			t.Errorf("Check(%q) marked correct", answer)
		}
	}
}

func TestCheckComprehension(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindComprehension, Expected: []string{"market", "the shop"}}

	tests := []struct {
		answer  string
		correct bool
	}{
		{"market", true},
		{"The Market", true},
		{"she went to the market", true},
		{"shop", false}, // fragment of "the shop" is not enough
		{"library", false},
	}
	for _, tt := range tests {
		v := c.Check(spec, tt.answer)
		if v.Correct != tt.correct {
			t.Errorf("comprehension %q: correct = %v, want %v", tt.answer, v.Correct, tt.correct)
		}
		if !v.Counted {
			t.Errorf("comprehension %q: not counted", tt.answer)
		}
	}

	// A single letter of a reference answer must not pass.
	spec = &Spec{Kind: KindComprehension, Expected: []string{"in the morning"}}
	if v := c.Check(spec, "i"); v.Correct {
		t.Error("one-letter fragment of a reference answer accepted")
	}
}

func TestCheckGapFilling(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindGapFilling, Expected: []string{"have", "morning", "because"}}

	tests := []struct {
		name     string
		answer   string
		correct  bool
		contains string
	}{
		{"all exact", "have, morning, because", true, "Excellent"},
		{"typo tolerated", "haev, morning, because", true, "Excellent"},
		{"mostly wrong", "one, two, because", false, "Needs practice"},
		{"wrong count", "have, morning", false, "3 gaps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.Check(spec, tt.answer)
			if v.Correct != tt.correct {
				t.Errorf("correct = %v, want %v (feedback: %s)", v.Correct, tt.correct, v.Feedback)
			}
			if !strings.Contains(v.Feedback, tt.contains) {
				t.Errorf("feedback %q does not contain %q", v.Feedback, tt.contains)
			}
		})
	}
}

func TestCheckSentenceFormation(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindSentenceFormation, Expected: []string{"I have a cat"}}

	// Word order is free.
	v := c.Check(spec, "a cat I have")
	if !v.Correct {
		t.Fatalf("reordered sentence rejected: %s", v.Feedback)
	}

	v = c.Check(spec, "I have a dog.")
	if v.Correct {
		t.Fatal("sentence missing a keyword accepted")
	}
	if !strings.Contains(v.Feedback, "cat") {
		t.Errorf("feedback %q does not name the missing word", v.Feedback)
	}
	if strings.Contains(v.Feedback, "I have a cat") {
		t.Errorf("feedback %q names the whole reference sentence", v.Feedback)
	}

	// One- and two-letter function words are not required.
	v = c.Check(spec, "cat have")
	if !v.Correct {
		t.Errorf("short function words required: %s", v.Feedback)
	}
}

func TestCheckSentenceFormationPunctuation(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindSentenceFormation, Expected: []string{"The dog runs in the park."}}

	v := c.Check(spec, "In the park, the dog runs!")
	if !v.Correct {
		t.Fatalf("punctuation broke the keyword match: %s", v.Feedback)
	}
}

func TestCheckGapFillingGoodTier(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindGapFilling, Expected: []string{"have", "morning", "because", "friends"}}

	v := c.Check(spec, "have, morning, because, banana")
	if v.Correct {
		t.Fatal("three of four marked fully correct")
	}
	if !strings.Contains(v.Feedback, "Good! 3 out of 4") {
		t.Errorf("feedback %q missing the good tier", v.Feedback)
	}
}

func TestCheckParagraph(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindParagraphWriting, Expected: []string{"my family"}}

	// Submitting a paragraph is what counts; length only shapes feedback.
	short := "I like my family very much."
	v := c.Check(spec, short)
	if !v.Correct || !v.Counted {
		t.Errorf("short paragraph = %+v, want correct and counted", v)
	}
	if !strings.Contains(v.Feedback, "That's a start") {
		t.Errorf("feedback %q missing the short tier", v.Feedback)
	}

	long := strings.Repeat("My family is very important to me. ", 7)
	v = c.Check(spec, long)
	if !v.Correct {
		t.Errorf("long paragraph rejected: %s", v.Feedback)
	}
	if !strings.Contains(v.Feedback, "Excellent") {
		t.Errorf("feedback %q missing the top tier", v.Feedback)
	}
}

type fakeAnalyzer struct {
	issues []string
	tips   []string
}

func (f fakeAnalyzer) Analyze(string) (issues, tips []string) { return f.issues, f.tips }

func TestCheckParagraphStructureFindings(t *testing.T) {
	c := NewChecker(DefaultCheckConfig(), fakeAnalyzer{
		issues: []string{"Use 'am' with 'I'"},
		tips:   []string{"Start sentences with a capital letter"},
	})
	spec := &Spec{Kind: KindParagraphWriting}

	v := c.Check(spec, strings.Repeat("i is happy every day with my friends. ", 4))
	if !strings.Contains(v.Feedback, "Use 'am' with 'I'") {
		t.Errorf("feedback %q missing analyzer issue", v.Feedback)
	}
	if !strings.Contains(v.Feedback, "capital letter") {
		t.Errorf("feedback %q missing analyzer tip", v.Feedback)
	}
}

func TestCheckPronunciation(t *testing.T) {
	c := newTestChecker()
	spec := &Spec{Kind: KindPronunciation}

	for _, done := range []string{"done", "Done", "  DONE  "} {
		v := c.Check(spec, done)
		if !v.Correct || !v.Counted {
			t.Errorf("Check(%q) = %+v, want correct and counted", done, v)
		}
	}

	v := c.Check(spec, "finished")
	if v.Correct || v.Counted {
		t.Errorf("non-completion input %+v should not count", v)
	}
}
