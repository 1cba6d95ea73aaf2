package exercise

import (
	"fmt"
	"strings"
)

// DefaultSystemPrompt is used when the learner's profile carries no
// custom generator prompt.
const DefaultSystemPrompt = "You are an experienced ESL teacher. Create level-appropriate, safe, diverse English-learning content. Follow the requested schema exactly and be concise."

// kindTasks describes the generation task per kind.
var kindTasks = map[Kind]string{
	KindComprehension:     "Create a short reading text and a single comprehension question with 2-4 acceptable short answers.",
	KindGapFilling:        "Create 1-2 sentences with 3 blanks marked by five underscores (_____) for grammar or vocabulary practice, plus the correct words in order.",
	KindSentenceFormation: "Create a set of 6-10 shuffled words that can form exactly one natural sentence, plus 1-3 valid full sentences.",
	KindParagraphWriting:  "Propose a concise writing topic for a short paragraph.",
	KindPronunciation:     "Provide a list of 4-6 level-appropriate pronunciation practice words.",
}

// buildUserMessage constructs the generation request from the input and
// config limits.
func buildUserMessage(input GenerateInput, cfg GeneratorConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Task: %s\n", kindTasks[input.Kind])
	fmt.Fprintf(&b, "Level: CEFR %s\n", input.Level)
	if input.Topic != "" {
		fmt.Fprintf(&b, "Preferred topic: %s\n", input.Topic)
	}
	b.WriteString("Constraints: avoid sensitive content; keep vocabulary and grammar appropriate to the level.\n")

	b.WriteString("\nAlready served recently (do not repeat):\n")
	b.WriteString(buildDedup(input.RecentPrompts, cfg.MaxRecentPrompts))

	return b.String()
}

// buildDedup formats recently served prompts for the request, respecting
// the max limit. Returns "None" when there is no history.
func buildDedup(recent []string, max int) string {
	if len(recent) == 0 {
		return "None"
	}

	// Keep only the most recent N prompts.
	if max > 0 && len(recent) > max {
		recent = recent[len(recent)-max:]
	}

	var b strings.Builder
	for i, p := range recent {
		fmt.Fprintf(&b, "%d. %s\n", i+1, compact(p))
	}
	return strings.TrimRight(b.String(), "\n")
}

// compact flattens a rendered prompt to a single bounded line so the
// dedup list stays small.
func compact(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	const maxLen = 160
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
