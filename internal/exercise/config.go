package exercise

// CheckConfig holds the scoring thresholds. The values are product
// tuning, not correctness contracts, so they live in config rather
// than constants.
type CheckConfig struct {
	// Similarity is the minimum string-similarity ratio for a gap-fill
	// token to count as correct. Exceeding (not meeting) the threshold
	// passes.
	Similarity float64

	// GoodTier is the fraction of correct gaps at which feedback shifts
	// from "needs practice" to "good".
	GoodTier float64

	// MinKeywordLen is the minimum token length considered a required
	// keyword in sentence formation. Tokens of this length or shorter
	// are ignored.
	MinKeywordLen int

	// ShortParagraphWords and GoodParagraphWords bound the word-count
	// feedback tiers for paragraph writing: below Short suggests writing
	// more, below Good is "good length", at or above Good is "excellent".
	ShortParagraphWords int
	GoodParagraphWords  int
}

// DefaultCheckConfig returns the standard scoring thresholds.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		Similarity:          0.8,
		GoodTier:            0.7,
		MinKeywordLen:       2,
		ShortParagraphWords: 20,
		GoodParagraphWords:  40,
	}
}

// GeneratorConfig controls the model-backed exercise generator.
type GeneratorConfig struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxRecentPrompts is the maximum number of recently served prompts
	// to include in the request for deduplication.
	MaxRecentPrompts int
}

// DefaultGeneratorConfig returns recommended generation defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:        512,
		Temperature:      0.8,
		MaxRecentPrompts: 8,
	}
}
