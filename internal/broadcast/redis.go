package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/EventHub/internal/domain"
)

// envelope is the wire shape published on a channel. OriginUserID lets
// subscribers drop broadcasts they caused themselves; the transport
// still delivers to everyone on the channel.
type envelope struct {
	Event        string `json:"event"`
	Data         any    `json:"data"`
	OriginUserID string `json:"origin_user_id,omitempty"`
}

// RedisBroadcaster publishes notifications over Redis Pub/Sub. Channel
// subscription, presence and fan-out are owned by the transport side.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(envelope{
		Event:        n.Kind,
		Data:         n.Payload,
		OriginUserID: n.OriginUserID,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := b.client.Publish(ctx, n.Channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", n.Channel, err)
	}

	return nil
}
