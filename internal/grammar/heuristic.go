// Package grammar provides lightweight writing feedback: a rule-based
// structure analyzer for instant feedback and a model-backed corrector
// for talk mode. Neither is a parser; the rules target the handful of
// mistakes ESL learners make constantly.
package grammar

import (
	"regexp"
	"strings"
)

const (
	maxIssues = 3
	maxTips   = 2
)

// runOnWords is the sentence length above which a missing comma reads as
// a run-on.
const runOnWords = 20

// HeuristicAnalyzer flags common structural mistakes in free-form
// writing. Stateless and safe for concurrent use.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer returns the rule-based analyzer.
func NewHeuristicAnalyzer() *HeuristicAnalyzer { return &HeuristicAnalyzer{} }

var (
	iIsRe       = regexp.MustCompile(`(?i)\bI (is|are)\b`)
	iAmVerbRe   = regexp.MustCompile(`(?i)\bI am ([a-z]+)\b`)
	questionRe  = regexp.MustCompile(`(?i)^(what|where|when|why|how|who) (I|you|he|she|it|we|they) `)
	doubleSpace = regexp.MustCompile(`  +`)
	// Place nouns that take "the" after go/went. "school" and "work" are
	// excluded on purpose, they are correct bare.
	missingTheRe = regexp.MustCompile(`(?i)\b(go to|went to|goes to) (park|store|market|library|cinema|office|beach|gym)\b`)
)

// bareVerbs are verbs learners put directly after "I am" ("I am study
// English"). Gerunds and adjectives are fine.
var bareVerbs = map[string]bool{
	"study": true, "work": true, "play": true, "read": true, "write": true,
	"watch": true, "cook": true, "learn": true, "speak": true, "live": true,
}

// Analyze inspects text and returns at most three issues and two tips.
// Empty results mean nothing suspicious was found, not that the text is
// correct.
func (a *HeuristicAnalyzer) Analyze(text string) (issues, tips []string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	for _, sentence := range splitSentences(trimmed) {
		words := strings.Fields(sentence)
		if len(words) >= runOnWords && !strings.Contains(sentence, ",") {
			issues = append(issues, "This sentence is very long. Break it up or add commas: \""+clip(sentence)+"\"")
		}
		if len(words) > 0 {
			first := []rune(words[0])[0]
			if first >= 'a' && first <= 'z' {
				issues = append(issues, "Start your sentences with a capital letter.")
				break
			}
		}
	}

	if iIsRe.MatchString(trimmed) {
		issues = append(issues, "Use 'am' with 'I': say 'I am', not 'I is' or 'I are'.")
	}
	if m := iAmVerbRe.FindStringSubmatch(trimmed); m != nil && bareVerbs[strings.ToLower(m[1])] {
		issues = append(issues, "After 'I am', use the -ing form: 'I am "+strings.ToLower(m[1])+"ing'.")
	}
	if questionRe.MatchString(trimmed) {
		tips = append(tips, "In questions, put the auxiliary before the subject: 'Where do you live?'")
	}
	if doubleSpace.MatchString(trimmed) {
		issues = append(issues, "Remove the double spaces between words.")
	}
	if missingTheRe.MatchString(trimmed) {
		tips = append(tips, "Check your articles: many places need 'the' ('go to the park').")
	}

	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return issues, tips
}

func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start:i]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func clip(s string) string {
	if len(s) <= 40 {
		return s
	}
	return s[:40] + "..."
}
