package learner

import (
	"regexp"
	"sort"
	"strings"
)

// wordRe matches candidate vocabulary tokens: alphabetic, longer than
// three characters, allowing inner apostrophes and hyphens ("doesn't",
// "well-known").
var wordRe = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z'-]{3,}\b`)

// HarvestVocabulary extracts new vocabulary from a learner's free-form
// answer and adds it to the state. Returns only the genuinely new words,
// sorted, so the caller can show a "new words" notification. Common
// function words are skipped.
func (s *State) HarvestVocabulary(text string) []string {
	matches := wordRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var fresh []string
	for _, m := range matches {
		w := strings.ToLower(m)
		if stopWords[w] || s.vocabulary[w] {
			continue
		}
		s.vocabulary[w] = true
		fresh = append(fresh, w)
	}
	sort.Strings(fresh)
	return fresh
}

// VocabularyCount returns the number of distinct harvested words.
func (s *State) VocabularyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.vocabulary)
}

// Vocabulary returns the harvested words, sorted.
func (s *State) Vocabulary() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.vocabulary))
	for w := range s.vocabulary {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
