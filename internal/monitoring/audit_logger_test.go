package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/intent"
	"github.com/aishuu11/hackathon-2025/internal/observability"
)

type fakePublisher struct {
	channel  string
	messages []interface{}
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) error {
	f.channel = channel
	f.messages = append(f.messages, message)
	return f.err
}

func sampleTurn() dialogue.Turn {
	return dialogue.Turn{
		Envelope: dialogue.Envelope{Type: dialogue.TypeFoodInfo},
		Trace: dialogue.Trace{
			Intent:    intent.IntentFoodQuery,
			Rule:      "food_catalog",
			MatchKey:  "bubble_tea",
			Score:     0.8,
			Corrected: "bubble tea",
			Latency:   1500 * time.Microsecond,
		},
	}
}

func TestNewTurnEvent(t *testing.T) {
	ev := NewTurnEvent("s1", sampleTurn())

	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, "food_query", ev.Intent)
	assert.Equal(t, "food_info", ev.Type)
	assert.Equal(t, "bubble_tea", ev.MatchKey)
	assert.Equal(t, 1.5, ev.LatencyMs)
	assert.True(t, ev.Corrected)
}

func TestAuditLogger_LogsAndPublishes(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(observability.LogConfig{Level: "info", Format: "json", Output: &buf})
	pub := &fakePublisher{}

	NewAuditLogger(logger, pub, true).ObserveTurn(context.Background(), "s1", sampleTurn())

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Turn audit", line["message"])
	assert.Equal(t, "s1", line["session_id"])
	assert.Equal(t, "bubble_tea", line["match_key"])

	assert.Equal(t, AuditChannel, pub.channel)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, "s1", pub.messages[0].(TurnEvent).SessionID)
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(observability.LogConfig{Level: "info", Format: "json", Output: &buf})
	pub := &fakePublisher{}

	NewAuditLogger(logger, pub, false).ObserveTurn(context.Background(), "s1", sampleTurn())

	assert.Zero(t, buf.Len())
	assert.Empty(t, pub.messages)
}

func TestAuditLogger_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("down")}
	a := NewAuditLogger(nil, pub, true)

	err := a.LogEvent(context.Background(), TurnEvent{SessionID: "s1"})
	assert.Error(t, err)
}
