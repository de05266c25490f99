package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/core/ports"
)

type recordingNotifier struct {
	mu       sync.Mutex
	sent     []ports.EventNotification
	err      error
	expected int
	done     chan struct{}
}

func newRecordingNotifier(expected int) *recordingNotifier {
	return &recordingNotifier{expected: expected, done: make(chan struct{})}
}

func (n *recordingNotifier) Send(_ context.Context, notification ports.EventNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	if len(n.sent) == n.expected {
		close(n.done)
	}
	return n.err
}

func (n *recordingNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for notifications")
	}
}

func TestDispatcher_DeliversEnqueuedNotifications(t *testing.T) {
	notifier := newRecordingNotifier(3)
	d := NewDispatcher(2, notifier, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 3; i++ {
		d.Enqueue(ports.EventNotification{Recipient: "user@x.com", Title: "Irrigate"})
	}
	notifier.wait(t)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.sent) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(notifier.sent))
	}
}

func TestDispatcher_ShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	first := d.shardIndex("farmer@x.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("farmer@x.com"); got != first {
			t.Fatalf("shard index changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DeliveryFailureDoesNotStopWorker(t *testing.T) {
	notifier := newRecordingNotifier(2)
	notifier.err = errors.New("smtp: connection refused")
	d := NewDispatcher(1, notifier, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.EventNotification{Recipient: "a@x.com", Title: "First"})
	d.Enqueue(ports.EventNotification{Recipient: "a@x.com", Title: "Second"})
	notifier.wait(t)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.sent) != 2 {
		t.Fatalf("worker stopped after a delivery failure: %d sends", len(notifier.sent))
	}
}
