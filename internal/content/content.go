// Package content holds the static offline exercise banks. The banks are
// assembled at init time and read-only afterwards, so concurrent reads
// from multiple users' handling paths need no locking.
package content

import (
	"fmt"
	"math/rand/v2"
)

// Item is one raw bank entry. Which fields are populated depends on the
// exercise kind it belongs to.
type Item struct {
	// ID is the stable identifier, e.g. "gap_filling/a1/0". Used by the
	// selector's anti-repetition window.
	ID string

	// Text is the passage (comprehension) or the sentence with blanks
	// (gap filling).
	Text string

	// Question is the comprehension question.
	Question string

	// Answers holds the reference answers: blank fillers in order for
	// gap filling, acceptable short answers for comprehension.
	Answers []string

	// Words is the shuffled word set (sentence formation) or the
	// practice word list (pronunciation).
	Words []string

	// Sentences holds valid full-sentence answers for sentence formation.
	Sentences []string

	// Topic is the writing prompt for paragraph writing.
	Topic string
}

// bank is the per-level item list for one kind.
type bank map[string][]Item

// pools maps kind tag → level tag → items. Populated by the register
// calls below; read-only after init.
var pools = map[string]bank{}

// fallbackLevel is the bucket used when a level has no bank of its own.
const fallbackLevel = "B1"

func register(kind, level string, items []Item) {
	b, ok := pools[kind]
	if !ok {
		b = bank{}
		pools[kind] = b
	}
	for i := range items {
		items[i].ID = fmt.Sprintf("%s/%s/%d", kind, level, i)
	}
	b[level] = items
}

// Pick draws one item uniformly at random from the bank for (kind,
// level), falling back to the B1 bank when the level has no bank of its
// own. Items whose ID appears in exclude are skipped when at least one
// alternative remains. Returns nil only for an unknown kind.
func Pick(kind, level string, exclude []string) *Item {
	b, ok := pools[kind]
	if !ok {
		return nil
	}
	items, ok := b[level]
	if !ok || len(items) == 0 {
		items = b[fallbackLevel]
	}
	if len(items) == 0 {
		return nil
	}

	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var fresh []Item
	for _, it := range items {
		if !excluded[it.ID] {
			fresh = append(fresh, it)
		}
	}
	if len(fresh) == 0 {
		fresh = items
	}

	it := fresh[rand.IntN(len(fresh))]
	return &it
}

// SampleWords returns n random practice words from the pronunciation
// bank for the level (B1 bank when the level has none).
func SampleWords(level string, n int) []string {
	b := pools["pronunciation"]
	items, ok := b[level]
	if !ok || len(items) == 0 {
		items = b[fallbackLevel]
	}
	words := items[0].Words
	if n > len(words) {
		n = len(words)
	}
	perm := rand.Perm(len(words))
	out := make([]string, n)
	for i := range n {
		out[i] = words[perm[i]]
	}
	return out
}

// HasBank reports whether a bank exists for exactly (kind, level),
// before fallback.
func HasBank(kind, level string) bool {
	b, ok := pools[kind]
	if !ok {
		return false
	}
	items, ok := b[level]
	return ok && len(items) > 0
}
