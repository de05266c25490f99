package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/api/metrics"
	"github.com/agrovia/farm-management/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans calendar-event notifications out to a fixed set of workers,
// sharded by recipient so a single user's notifications stay ordered.
// Delivery is fire-and-forget: failures are logged and counted, never
// surfaced to the request that produced the notification.
type Dispatcher struct {
	workers  []chan ports.EventNotification
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.EventNotification, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.EventNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.EventNotification) {
	d.workers[d.shardIndex(n.Recipient)] <- n
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.EventNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Send(ctx, n); err != nil {
				metrics.NotificationsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("recipient", n.Recipient).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		}
	}
}
