package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisNotificationService publishes events on a Redis channel consumed by the
// websocket event stream and any other display surface.
type RedisNotificationService struct {
	Client  *redis.Client
	Channel string
}

func NewRedisNotificationService(client *redis.Client, channel string) *RedisNotificationService {
	return &RedisNotificationService{Client: client, Channel: channel}
}

// Publish marshals the event and PUBLISHes it. Errors are returned for logging only;
// callers never fail a booking over a lost display event.
func (s *RedisNotificationService) Publish(ctx context.Context, event string, payload interface{}) error {
	msg, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"payload":   payload,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("Publish: failed to marshal event %s: %w", event, err)
	}
	if err := s.Client.Publish(ctx, s.Channel, msg).Err(); err != nil {
		return fmt.Errorf("Publish: failed to publish event %s: %w", event, err)
	}
	return nil
}
