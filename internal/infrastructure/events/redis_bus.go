package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// DefaultChannel is the pub/sub channel that carries directory change
// notifications.
const DefaultChannel = "mechanics:events"

// RedisBus publishes mechanic events over Redis pub/sub. Delivery is
// fire-and-forget; listeners treat events as refresh hints only.
type RedisBus struct {
	client  *redis.Client
	channel string
}

// NewRedisBus creates an event bus on the given channel. An empty
// channel name falls back to DefaultChannel.
func NewRedisBus(client *redis.Client, channel string) *RedisBus {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBus{client: client, channel: channel}
}

// Publish implements domain.EventBus.
func (b *RedisBus) Publish(ctx context.Context, event domain.MechanicEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Subscribe returns a channel of decoded events. Malformed payloads are
// skipped. The subscription ends when ctx is cancelled.
func (b *RedisBus) Subscribe(ctx context.Context) (<-chan domain.MechanicEvent, error) {
	sub := b.client.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, err
	}

	out := make(chan domain.MechanicEvent)
	go func() {
		defer close(out)
		defer sub.Close()
		for msg := range sub.Channel() {
			var event domain.MechanicEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
