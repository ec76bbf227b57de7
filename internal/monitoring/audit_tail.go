package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
)

// Subscriber streams raw messages from a pub/sub channel. cache.RedisClient
// satisfies it.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error)
}

// Tail reads turn events from AuditChannel and hands each one to fn. It
// returns after limit events (0 means no limit), when ctx is done, or when
// the subscription closes. Payloads that are not turn events are skipped.
func Tail(ctx context.Context, sub Subscriber, limit int, fn func(TurnEvent)) error {
	msgs, unsubscribe, err := sub.Subscribe(ctx, AuditChannel)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", AuditChannel, err)
	}
	defer unsubscribe()

	seen := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-msgs:
			if !ok {
				return nil
			}
			var event TurnEvent
			if err := json.Unmarshal(data, &event); err != nil {
				continue
			}
			fn(event)
			seen++
			if limit > 0 && seen >= limit {
				return nil
			}
		}
	}
}
