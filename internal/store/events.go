package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AttemptEvent captures one scored exercise attempt.
type AttemptEvent struct {
	UserID     int64
	ExerciseID string
	Kind       string
	Level      string
	Correct    bool
	Generated  bool // true when the content came from the model, false for pool content
}

// LLMRequestEvent captures a single generation API call.
type LLMRequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append access to analytics events. All methods are
// best-effort from the caller's point of view: a failed append must never
// fail the user-facing operation.
type EventRepo interface {
	// AppendAttempt records a scored exercise attempt.
	AppendAttempt(ctx context.Context, data AttemptEvent) error

	// AppendLLMRequest records a generation API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEvent) error
}

type eventRepo struct {
	db *sqlx.DB
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempt_events (user_id, exercise_id, kind, level, correct, generated)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.UserID, data.ExerciseID, data.Kind, data.Level, data.Correct, data.Generated)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// KindStat aggregates attempts for one exercise kind.
type KindStat struct {
	Kind     string `db:"kind"`
	Attempts int    `db:"attempts"`
	Correct  int    `db:"correct"`
}

// LLMStat aggregates generation calls for one purpose.
type LLMStat struct {
	Purpose      string `db:"purpose"`
	Requests     int    `db:"requests"`
	Failures     int    `db:"failures"`
	TotalTokens  int    `db:"total_tokens"`
	AvgLatencyMs int    `db:"avg_latency_ms"`
}

// Stats holds the aggregates shown by the stats command.
type Stats struct {
	Attempts []KindStat
	LLM      []LLMStat
}

// Stats aggregates the event log.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	var out Stats

	err := s.db.SelectContext(ctx, &out.Attempts,
		`SELECT kind, COUNT(*) AS attempts, SUM(correct) AS correct
		 FROM attempt_events GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("aggregate attempts: %w", err)
	}

	err = s.db.SelectContext(ctx, &out.LLM,
		`SELECT purpose,
		        COUNT(*) AS requests,
		        COUNT(*) - SUM(success) AS failures,
		        COALESCE(SUM(input_tokens + output_tokens), 0) AS total_tokens,
		        COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0) AS avg_latency_ms
		 FROM llm_request_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM requests: %w", err)
	}

	return &out, nil
}
