package ports

import (
	"context"
	"time"
)

// EventNotification is the payload handed to the notification pipeline when
// a calendar event is created.
type EventNotification struct {
	Recipient   string
	Title       string
	Date        time.Time
	Description string
	EventType   string
}

// Notifier delivers a single notification to its recipient. Implementations
// are consumed external systems (e.g. an email gateway) and may be no-ops.
type Notifier interface {
	Send(ctx context.Context, n EventNotification) error
}

// NotificationQueue accepts notifications for asynchronous, fire-and-forget
// delivery. Enqueue never blocks the request that produced the notification
// beyond channel capacity and never reports delivery errors to it.
type NotificationQueue interface {
	Enqueue(n EventNotification)
}
