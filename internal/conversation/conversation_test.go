package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/llm"
)

func TestStartFromModel(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topic": "street food", "starter": "Have you ever tried street food while traveling?"}`),
	})
	p := NewPartner(provider, nil)

	op := p.Start(context.Background(), exercise.LevelB2, "")
	if op.Topic != "street food" {
		t.Errorf("topic = %q", op.Topic)
	}
	if !strings.Contains(op.Starter, "street food") {
		t.Errorf("starter = %q", op.Starter)
	}
	if provider.Calls[0].Schema == nil {
		t.Error("opening request carried no schema")
	}
}

func TestStartFallsBackToBanks(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("offline")})
	p := NewPartner(provider, nil)

	op := p.Start(context.Background(), exercise.LevelA1, "")
	if op.Topic == "" || op.Starter == "" {
		t.Fatalf("empty offline opening: %+v", op)
	}
	if !strings.Contains(op.Starter, op.Topic) {
		t.Errorf("starter %q does not mention topic %q", op.Starter, op.Topic)
	}

	found := false
	for _, topic := range topicsByLevel[exercise.LevelA1] {
		if topic == op.Topic {
			found = true
		}
	}
	if !found {
		t.Errorf("topic %q not drawn from the A1 bank", op.Topic)
	}
}

func TestStartNoProvider(t *testing.T) {
	p := NewPartner(nil, nil)

	op := p.Start(context.Background(), exercise.Level("Z9"), "cooking")
	if op.Topic != "cooking" {
		t.Errorf("preferred topic ignored: %q", op.Topic)
	}
	if op.Starter == "" {
		t.Error("empty starter")
	}
}

func TestReplyFromModel(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"That sounds wonderful! What dish did you try first?"`),
	})
	p := NewPartner(provider, nil)

	history := []Exchange{
		{FromLearner: false, Text: "Have you tried street food?"},
		{FromLearner: true, Text: "Yes, in Bangkok last year."},
	}
	reply := p.Reply(context.Background(), exercise.LevelB1, history)
	if !strings.Contains(reply, "What dish") {
		t.Errorf("reply = %q", reply)
	}

	// History is forwarded with the learner as the user role.
	msgs := provider.Calls[0].Messages
	last := msgs[len(msgs)-1]
	if last.Role != llm.RoleUser || !strings.Contains(last.Content, "Bangkok") {
		t.Errorf("last forwarded message = %+v", last)
	}
}

func TestReplyOfflineIsContextual(t *testing.T) {
	p := NewPartner(nil, nil)

	history := []Exchange{{FromLearner: true, Text: "I really like swimming in the sea"}}
	reply := p.Reply(context.Background(), exercise.LevelA2, history)
	if !strings.Contains(reply, "enjoy") {
		t.Errorf("reply %q did not react to the liking statement", reply)
	}

	history = []Exchange{{FromLearner: true, Text: "yes"}}
	reply = p.Reply(context.Background(), exercise.LevelA2, history)
	if !strings.Contains(reply, "Tell me more") {
		t.Errorf("reply %q did not ask to elaborate", reply)
	}
}
