package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndAggregateAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	attempts := []AttemptEvent{
		{UserID: 1, ExerciseID: "gap_filling/A1/0", Kind: "gap_filling", Level: "A1", Correct: true},
		{UserID: 1, ExerciseID: "gen/gap_filling/abc", Kind: "gap_filling", Level: "A1", Correct: false, Generated: true},
		{UserID: 2, ExerciseID: "comprehension/B1/1", Kind: "comprehension", Level: "B1", Correct: true},
	}
	for _, a := range attempts {
		require.NoError(t, repo.AppendAttempt(ctx, a))
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Attempts, 2)

	require.Equal(t, "comprehension", stats.Attempts[0].Kind)
	require.Equal(t, 1, stats.Attempts[0].Attempts)

	require.Equal(t, "gap_filling", stats.Attempts[1].Kind)
	require.Equal(t, 2, stats.Attempts[1].Attempts)
	require.Equal(t, 1, stats.Attempts[1].Correct)
}

func TestAppendAndAggregateLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEvent{
		Provider: "mock", Model: "mock", Purpose: "exercise-gen",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEvent{
		Provider: "mock", Model: "mock", Purpose: "exercise-gen",
		LatencyMs: 200, Success: false, ErrorMessage: "rate limited",
	}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.LLM, 1)

	llm := stats.LLM[0]
	require.Equal(t, "exercise-gen", llm.Purpose)
	require.Equal(t, 2, llm.Requests)
	require.Equal(t, 1, llm.Failures)
	require.Equal(t, 150, llm.TotalTokens)
	require.Equal(t, 300, llm.AvgLatencyMs)
}

func TestStatsOnEmptyStore(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	require.Empty(t, stats.Attempts)
	require.Empty(t, stats.LLM)
}
