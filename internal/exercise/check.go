package exercise

import (
	"fmt"
	"strings"
)

// Verdict is the outcome of checking one learner answer.
type Verdict struct {
	// Correct reports whether the answer passed the kind's policy.
	Correct bool

	// Counted reports whether the attempt should count toward progress.
	// Blank input and stray menu commands are not attempts.
	Counted bool

	// Feedback is the learner-facing message.
	Feedback string
}

// StructureAnalyzer inspects free-form writing for grammar and structure
// problems. The paragraph checker appends its findings to the feedback.
type StructureAnalyzer interface {
	Analyze(text string) (issues, tips []string)
}

// Checker scores learner answers against an exercise spec. Stateless and
// safe for concurrent use.
type Checker struct {
	cfg      CheckConfig
	analyzer StructureAnalyzer
}

// NewChecker builds a Checker. analyzer may be nil to skip structure
// analysis on written paragraphs.
func NewChecker(cfg CheckConfig, analyzer StructureAnalyzer) *Checker {
	return &Checker{cfg: cfg, analyzer: analyzer}
}

// navigationCommands are menu inputs that sometimes arrive while an
// exercise is open. They are never treated as answers.
var navigationCommands = []string{
	"🎯 next exercise",
	"🎯 start lesson",
	"📊 my statistics",
	"📚 my progress",
	"🏠 main menu",
	"/start_lesson",
	"/start",
	"/progress",
}

func isNavigation(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	for _, cmd := range navigationCommands {
		if a == cmd {
			return true
		}
	}
	return false
}

// Check scores answer against spec and returns the verdict.
func (c *Checker) Check(spec *Spec, answer string) Verdict {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return Verdict{Feedback: "Please type your answer first."}
	}
	if isNavigation(trimmed) {
		return Verdict{Feedback: "Finish the current exercise first, or type /start to leave the lesson."}
	}

	switch spec.Kind {
	case KindComprehension:
		return c.checkComprehension(spec, trimmed)
	case KindGapFilling:
		return c.checkGapFilling(spec, trimmed)
	case KindSentenceFormation:
		return c.checkSentenceFormation(spec, trimmed)
	case KindParagraphWriting:
		return c.checkParagraph(trimmed)
	case KindPronunciation:
		return c.checkPronunciation(trimmed)
	}
	return Verdict{Counted: true, Feedback: "Answer recorded."}
}

// checkComprehension accepts the answer when any reference answer
// appears in it case-insensitively: "she went to the market" matches
// reference "market". Containment is one-way, so a fragment of a
// reference answer is not enough.
func (c *Checker) checkComprehension(spec *Spec, answer string) Verdict {
	got := strings.ToLower(answer)
	for _, ref := range spec.Expected {
		want := strings.ToLower(strings.TrimSpace(ref))
		if want == "" {
			continue
		}
		if strings.Contains(got, want) {
			return Verdict{Correct: true, Counted: true, Feedback: "Correct! Well done. ✅"}
		}
	}
	hint := ""
	if len(spec.Expected) > 0 {
		hint = fmt.Sprintf(" The answer was: %s.", spec.Expected[0])
	}
	return Verdict{Counted: true, Feedback: "Not quite." + hint + " Keep practicing!"}
}

// checkGapFilling splits the answer on commas and scores each gap by
// string similarity against the reference filler in the same position.
func (c *Checker) checkGapFilling(spec *Spec, answer string) Verdict {
	parts := strings.Split(answer, ",")
	given := make([]string, 0, len(parts))
	for _, p := range parts {
		given = append(given, strings.ToLower(strings.TrimSpace(p)))
	}

	if len(given) != len(spec.Expected) {
		return Verdict{Counted: true, Feedback: fmt.Sprintf(
			"This exercise has %d gaps but you gave %d answers. Separate them with commas.",
			len(spec.Expected), len(given))}
	}

	correct := 0
	for i, want := range spec.Expected {
		if similarity(given[i], strings.ToLower(strings.TrimSpace(want))) > c.cfg.Similarity {
			correct++
		}
	}

	total := len(spec.Expected)
	switch {
	case correct == total:
		return Verdict{Correct: true, Counted: true, Feedback: "Excellent! All gaps filled correctly. ✅"}
	case float64(correct)/float64(total) >= c.cfg.GoodTier:
		return Verdict{Counted: true, Feedback: fmt.Sprintf(
			"Good! %d out of %d correct. The answers were: %s.",
			correct, total, strings.Join(spec.Expected, ", "))}
	default:
		return Verdict{Counted: true, Feedback: fmt.Sprintf(
			"Needs practice: %d out of %d correct. The answers were: %s.",
			correct, total, strings.Join(spec.Expected, ", "))}
	}
}

// checkSentenceFormation requires every keyword of the reference
// sentence to appear somewhere in the learner's sentence. Word order is
// free and short function words are not required.
func (c *Checker) checkSentenceFormation(spec *Spec, answer string) Verdict {
	if len(spec.Expected) == 0 {
		return Verdict{Correct: true, Counted: true, Feedback: "Great sentence! You used all the words. ✅"}
	}

	used := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(answer)) {
		used[strings.Trim(tok, ".,!?;:'\"")] = true
	}

	seen := make(map[string]bool)
	var missing []string
	for _, tok := range strings.Fields(spec.Expected[0]) {
		word := strings.ToLower(strings.Trim(tok, ".,!?;:'\""))
		if len(word) <= c.cfg.MinKeywordLen || seen[word] {
			continue
		}
		seen[word] = true
		if !used[word] {
			missing = append(missing, word)
		}
	}

	if len(missing) == 0 {
		return Verdict{Correct: true, Counted: true, Feedback: "Great sentence! You used all the words. ✅"}
	}
	return Verdict{Counted: true, Feedback: fmt.Sprintf(
		"Almost there. Your sentence is missing: %s. Try again next time!",
		strings.Join(missing, ", "))}
}

// checkParagraph scores written paragraphs on length and sentence count,
// then appends structure findings when an analyzer is configured. Any
// real attempt at a paragraph counts as correct; the feedback tiers
// carry the nuance.
func (c *Checker) checkParagraph(answer string) Verdict {
	words := len(strings.Fields(answer))
	sentences := countSentences(answer)

	var b strings.Builder
	switch {
	case words < c.cfg.ShortParagraphWords:
		b.WriteString(fmt.Sprintf(
			"That's a start (%d words). Try to write at least %d words next time.",
			words, c.cfg.ShortParagraphWords))
	case words < c.cfg.GoodParagraphWords:
		b.WriteString(fmt.Sprintf("Good paragraph! %d words. ✅", words))
	default:
		b.WriteString(fmt.Sprintf("Excellent paragraph! %d words. ✅", words))
	}

	if sentences < 2 {
		b.WriteString(" Try splitting your ideas into several sentences.")
	}

	if c.analyzer != nil {
		issues, tips := c.analyzer.Analyze(answer)
		for _, is := range issues {
			b.WriteString("\n• " + is)
		}
		for _, tip := range tips {
			b.WriteString("\n💡 " + tip)
		}
	}

	return Verdict{
		Correct:  true,
		Counted:  true,
		Feedback: b.String(),
	}
}

// checkPronunciation accepts only the completion word. Audio itself is
// not graded.
func (c *Checker) checkPronunciation(answer string) Verdict {
	if strings.EqualFold(strings.TrimSpace(answer), "done") {
		return Verdict{Correct: true, Counted: true, Feedback: "Great practice! Keep working on those sounds. ✅"}
	}
	return Verdict{Feedback: "Say the words aloud, then type 'done' when you have finished."}
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n == 0 && strings.TrimSpace(text) != "" {
		n = 1
	}
	return n
}
