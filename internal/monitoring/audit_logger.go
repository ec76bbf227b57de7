// Package monitoring records an audit trail of processed turns.
package monitoring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/observability"
)

// AuditChannel is the pub/sub channel turn events are published on.
const AuditChannel = "audit:turns"

// Publisher fans audit events out to other processes. cache.RedisClient
// satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// AuditLogger handles turn audit events.
type AuditLogger struct {
	logger    *observability.Logger
	publisher Publisher
	enabled   bool
}

// TurnEvent is one audited turn.
type TurnEvent struct {
	ID         uuid.UUID `json:"id"`
	SessionID  string    `json:"session_id"`
	Intent     string    `json:"intent"`
	Rule       string    `json:"rule"`
	Type       string    `json:"type"`
	MatchKey   string    `json:"match_key,omitempty"`
	Score      float64   `json:"score"`
	LatencyMs  float64   `json:"latency_ms"`
	Corrected  bool      `json:"corrected"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewAuditLogger creates an audit logger. publisher may be nil.
func NewAuditLogger(logger *observability.Logger, publisher Publisher, enabled bool) *AuditLogger {
	if logger == nil {
		logger = observability.Nop()
	}
	return &AuditLogger{
		logger:    logger.WithComponent("audit"),
		publisher: publisher,
		enabled:   enabled,
	}
}

// NewTurnEvent builds the audit record for a turn.
func NewTurnEvent(sessionID string, turn dialogue.Turn) TurnEvent {
	return TurnEvent{
		ID:         uuid.New(),
		SessionID:  sessionID,
		Intent:     string(turn.Trace.Intent),
		Rule:       turn.Trace.Rule,
		Type:       string(turn.Envelope.Type),
		MatchKey:   turn.Trace.MatchKey,
		Score:      turn.Trace.Score,
		LatencyMs:  float64(turn.Trace.Latency.Microseconds()) / 1000,
		Corrected:  turn.Trace.Corrected != "",
		OccurredAt: time.Now().UTC(),
	}
}

// ObserveTurn records a processed turn.
func (a *AuditLogger) ObserveTurn(ctx context.Context, sessionID string, turn dialogue.Turn) {
	if !a.enabled {
		return
	}
	_ = a.LogEvent(ctx, NewTurnEvent(sessionID, turn))
}

// LogEvent records an audit event. Publish failures are logged and returned
// but never block the turn.
func (a *AuditLogger) LogEvent(ctx context.Context, event TurnEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	a.logger.WithContext(ctx).Info().
		Str("event_id", event.ID.String()).
		Str("session_id", event.SessionID).
		Str("intent", event.Intent).
		Str("rule", event.Rule).
		Str("type", event.Type).
		Str("match_key", event.MatchKey).
		Float64("score", event.Score).
		Float64("latency_ms", event.LatencyMs).
		Bool("corrected", event.Corrected).
		Msg("Turn audit")

	if a.publisher == nil {
		return nil
	}
	if err := a.publisher.Publish(ctx, AuditChannel, event); err != nil {
		a.logger.Warn().Err(err).Str("event_id", event.ID.String()).Msg("Failed to publish audit event")
		return err
	}
	return nil
}
