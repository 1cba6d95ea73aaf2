package exercise

import (
	"log/slog"
	"strings"
)

// Kind identifies an exercise category.
type Kind string

const (
	KindComprehension     Kind = "comprehension"
	KindGapFilling        Kind = "gap_filling"
	KindSentenceFormation Kind = "sentence_formation"
	KindParagraphWriting  Kind = "paragraph_writing"
	KindPronunciation     Kind = "pronunciation"
)

// Kinds lists all supported exercise kinds.
var Kinds = []Kind{
	KindComprehension,
	KindGapFilling,
	KindSentenceFormation,
	KindParagraphWriting,
	KindPronunciation,
}

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all known CEFR levels, weakest first.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// DefaultLevel is the bucket unknown level strings collapse to.
const DefaultLevel = LevelB1

// ParseLevel extracts a CEFR level from a free-form string such as
// "B1 (Intermediate)" or "b2". Unknown values collapse to DefaultLevel
// with a warning; a level string is onboarding input, never an error.
func ParseLevel(s string) Level {
	key := strings.ToUpper(strings.TrimSpace(s))
	if i := strings.IndexByte(key, ' '); i != -1 {
		key = key[:i]
	}
	for _, l := range Levels {
		if key == string(l) {
			return l
		}
	}
	slog.Warn("unknown CEFR level, defaulting", "level", s, "default", DefaultLevel)
	return DefaultLevel
}

// Spec is the normalized exercise unit produced by the Selector and
// consumed by the Checker. Created fresh per request and never mutated
// after checking.
type Spec struct {
	// ID uniquely identifies this served exercise (for the
	// anti-repetition window and analytics).
	ID string

	// Kind selects the checking policy.
	Kind Kind

	// Level the exercise was produced for.
	Level Level

	// Prompt is the rendered instructions/content shown to the learner.
	Prompt string

	// Expected is the ordered list of acceptable reference answers.
	// Semantics vary by kind: exact words in blank order for gap_filling,
	// acceptable short answers for comprehension, reference sentences for
	// sentence_formation (the first supplies the required keywords), the
	// topic for paragraph_writing, empty for pronunciation.
	Expected []string

	// Generated is true when the content came from the model rather than
	// the static pools.
	Generated bool
}

// Instructions returns the one-line task description for a kind.
func (k Kind) Instructions() string {
	switch k {
	case KindComprehension:
		return "Read the text and answer the question"
	case KindGapFilling:
		return "Fill in the gaps with appropriate words"
	case KindSentenceFormation:
		return "Create a sentence using the given words"
	case KindParagraphWriting:
		return "Write a short paragraph on the topic"
	case KindPronunciation:
		return "Practice pronouncing these words"
	default:
		return "Complete the exercise"
	}
}
