// Package notify delivers best-effort email notifications for new leads.
// Delivery is decoupled from the request path by a bounded queue: enqueueing
// never blocks, and send failures are logged, never propagated.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// Sender delivers a single new-lead notification.
type Sender interface {
	Send(ctx context.Context, lead *model.Lead) error
}

const sendTimeout = 30 * time.Second

// Dispatcher owns the notification queue and its single worker goroutine.
// Create it at startup and Close it at shutdown.
type Dispatcher struct {
	sender Sender
	queue  chan *model.Lead
	wg     sync.WaitGroup
}

// NewDispatcher starts the worker. queueSize bounds the number of pending
// notifications; further enqueues are dropped.
func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan *model.Lead, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for lead := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Send(ctx, lead); err != nil {
			slog.Error("lead notification failed", "lead_id", lead.ID, "error", err)
		} else {
			slog.Info("lead notification sent", "lead_id", lead.ID)
		}
		cancel()
	}
}

// NotifyNewLead enqueues a notification without blocking the caller.
// Returns false when the queue is full and the notification was dropped.
func (d *Dispatcher) NotifyNewLead(lead *model.Lead) bool {
	select {
	case d.queue <- lead:
		return true
	default:
		slog.Warn("notification queue full, dropping", "lead_id", lead.ID)
		return false
	}
}

// Close stops accepting work and waits for in-flight sends to finish.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
