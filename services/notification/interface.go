package notification

import "context"

// NotificationService publishes assistant events to the display surface. Publication
// is fire-and-forget; the dialogue never depends on it.
type NotificationService interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}
