package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"custody-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventPublisher implements ports.EventSink over Redis pub/sub. Downstream
// consumers (reconcilers, notification relays) subscribe to the channel.
type EventPublisher struct {
	client  *goredis.Client
	channel string
}

// NewEventPublisher creates a publisher on the given channel.
func NewEventPublisher(client *goredis.Client, channel string) *EventPublisher {
	return &EventPublisher{client: client, channel: channel}
}

// Publish sends one notification as JSON.
func (p *EventPublisher) Publish(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
