package exercise

import "github.com/tanasevich/engtutor/internal/llm"

// Schemas maps each exercise kind to the JSON schema its generated
// content must conform to.
var Schemas = map[Kind]*llm.Schema{
	KindComprehension: {
		Name:        "comprehension-exercise",
		Description: "A short reading text with a single comprehension question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "The reading passage, 60-120 words, level-appropriate",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "One comprehension question about the passage",
				},
				"answers": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "2-4 acceptable short answers",
				},
			},
			"required":             []any{"text", "question", "answers"},
			"additionalProperties": false,
		},
	},
	KindGapFilling: {
		Name:        "gap-filling-exercise",
		Description: "Sentences with blanks to fill for grammar or vocabulary practice",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "1-2 sentences with each blank marked by exactly five underscores (_____)",
				},
				"answers": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "The correct words, one per blank, in order",
				},
			},
			"required":             []any{"text", "answers"},
			"additionalProperties": false,
		},
	},
	KindSentenceFormation: {
		Name:        "sentence-formation-exercise",
		Description: "A shuffled word set that forms one natural sentence",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"words": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "6-10 shuffled words",
				},
				"possible_answers": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "1-3 valid full sentences using the words",
				},
			},
			"required":             []any{"words", "possible_answers"},
			"additionalProperties": false,
		},
	},
	KindParagraphWriting: {
		Name:        "paragraph-writing-exercise",
		Description: "A concise topic for a short written paragraph",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type":        "string",
					"description": "The writing topic, one sentence",
				},
			},
			"required":             []any{"topic"},
			"additionalProperties": false,
		},
	},
	KindPronunciation: {
		Name:        "pronunciation-exercise",
		Description: "A list of level-appropriate pronunciation practice words",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"words": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "4-6 practice words",
				},
			},
			"required":             []any{"words"},
			"additionalProperties": false,
		},
	},
}
