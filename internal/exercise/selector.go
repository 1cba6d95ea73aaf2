package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tanasevich/engtutor/internal/content"
)

// pronunciationWords is how many practice words a pronunciation exercise
// drawn from the pools carries.
const pronunciationWords = 5

// Hints carries per-request selection preferences from the learner's
// profile. The zero value means no preference.
type Hints struct {
	// Topic biases generated content toward the learner's interest.
	Topic string

	// SystemPrompt overrides the default generator persona.
	SystemPrompt string

	// ForceKind pins the kind instead of drawing one, e.g. when the
	// learner asked for a specific exercise type.
	ForceKind Kind
}

// Selector produces the next exercise for a learner: a kind different
// from the last one served, content from the generator when it answers
// in time and validates, otherwise from the static pools with the
// recently served items excluded.
type Selector struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewSelector builds a Selector. gen may be nil, in which case every
// selection comes from the pools. timeout bounds a single generation
// attempt; zero means 15 seconds.
func NewSelector(gen Generator, timeout time.Duration, logger *slog.Logger) *Selector {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{gen: gen, timeout: timeout, logger: logger}
}

// Select returns the next exercise for the learner and records it in
// hist. The returned spec is always non-nil: generation failures degrade
// to the pools, never to an error the caller has to route around.
func (s *Selector) Select(ctx context.Context, level Level, hist *History, hints Hints) *Spec {
	kind := hints.ForceKind
	if kind == "" {
		kind = drawKind(hist.LastKind())
	}

	spec := s.generate(ctx, kind, level, hist, hints)
	if spec == nil {
		spec = s.fromPool(kind, level, hist)
	}

	hist.Record(spec)
	return spec
}

// drawKind picks a kind uniformly from all kinds except last. Before the
// first selection last is empty and every kind is a candidate.
func drawKind(last Kind) Kind {
	candidates := make([]Kind, 0, len(Kinds))
	for _, k := range Kinds {
		if k != last {
			candidates = append(candidates, k)
		}
	}
	return candidates[rand.IntN(len(candidates))]
}

// generate asks the generator for content, bounded by the selector's
// timeout. Returns nil on any failure; the caller falls back to the
// pools.
func (s *Selector) generate(ctx context.Context, kind Kind, level Level, hist *History, hints Hints) *Spec {
	if s.gen == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := s.gen.Generate(ctx, GenerateInput{
		Kind:          kind,
		Level:         level,
		Topic:         hints.Topic,
		SystemPrompt:  hints.SystemPrompt,
		RecentPrompts: hist.RecentPrompts(),
	})
	if err != nil {
		s.logger.Warn("exercise generation failed, using pools",
			"kind", kind, "level", level, "error", err)
		return nil
	}

	return &Spec{
		ID:        "gen/" + string(kind) + "/" + uuid.NewString(),
		Kind:      kind,
		Level:     level,
		Prompt:    renderPayload(kind, payload),
		Expected:  expectedFromPayload(kind, payload),
		Generated: true,
	}
}

// fromPool draws a bank item, skipping recently served IDs.
func (s *Selector) fromPool(kind Kind, level Level, hist *History) *Spec {
	if kind == KindPronunciation {
		words := content.SampleWords(string(level), pronunciationWords)
		return &Spec{
			ID:     "pool/pronunciation/" + uuid.NewString(),
			Kind:   kind,
			Level:  level,
			Prompt: renderPronunciation(words),
		}
	}

	item := content.Pick(string(kind), string(level), hist.RecentIDs())
	if item == nil {
		// Unknown kind only; keep the contract of a non-nil spec.
		words := content.SampleWords(string(level), pronunciationWords)
		return &Spec{
			ID:     "pool/pronunciation/" + uuid.NewString(),
			Kind:   KindPronunciation,
			Level:  level,
			Prompt: renderPronunciation(words),
		}
	}

	return &Spec{
		ID:       item.ID,
		Kind:     kind,
		Level:    level,
		Prompt:   renderItem(kind, item),
		Expected: expectedFromItem(kind, item),
	}
}

func renderPayload(kind Kind, p *Payload) string {
	switch kind {
	case KindComprehension:
		return renderComprehension(p.Text, p.Question)
	case KindGapFilling:
		return renderGapFilling(p.Text)
	case KindSentenceFormation:
		return renderSentenceFormation(p.Words)
	case KindParagraphWriting:
		return renderParagraph(p.Topic)
	case KindPronunciation:
		return renderPronunciation(p.Words)
	}
	return ""
}

func renderItem(kind Kind, it *content.Item) string {
	switch kind {
	case KindComprehension:
		return renderComprehension(it.Text, it.Question)
	case KindGapFilling:
		return renderGapFilling(it.Text)
	case KindSentenceFormation:
		return renderSentenceFormation(it.Words)
	case KindParagraphWriting:
		return renderParagraph(it.Topic)
	}
	return ""
}

func expectedFromPayload(kind Kind, p *Payload) []string {
	switch kind {
	case KindComprehension, KindGapFilling:
		return p.Answers
	case KindSentenceFormation:
		return p.PossibleAnswers
	case KindParagraphWriting:
		return []string{p.Topic}
	}
	return nil
}

func expectedFromItem(kind Kind, it *content.Item) []string {
	switch kind {
	case KindComprehension, KindGapFilling:
		return it.Answers
	case KindSentenceFormation:
		return it.Sentences
	case KindParagraphWriting:
		return []string{it.Topic}
	}
	return nil
}

func renderComprehension(text, question string) string {
	return fmt.Sprintf("Read the text and answer the question:\n\n%s\n\nQuestion: %s\n\nYour answer:", text, question)
}

func renderGapFilling(text string) string {
	return fmt.Sprintf("Fill in the gaps with appropriate words:\n\n%s\n\nEnter your answers separated by commas:", text)
}

func renderSentenceFormation(words []string) string {
	return fmt.Sprintf("Create a sentence using these words: %s\n\nYour sentence:", strings.Join(words, ", "))
}

func renderParagraph(topic string) string {
	return fmt.Sprintf("Write a short paragraph about: %s\n\nYour paragraph:", topic)
}

func renderPronunciation(words []string) string {
	return fmt.Sprintf("Practice pronouncing these words: %s\n\nSay them aloud and type 'done' when finished:", strings.Join(words, ", "))
}
