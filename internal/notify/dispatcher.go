// Package notify delivers lifecycle notifications to a Telegram chat
// through a single ordered background worker.
package notify

import (
	"log/slog"
	"sync"
)

// Dispatcher serializes outbound notifications. Enqueue never blocks
// the caller; one worker delivers messages strictly in enqueue order,
// and a delivery failure is logged and dropped so it can never affect
// the supervised command's outcome.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []string
	closed bool

	done chan struct{}
}

// NewDispatcher starts the delivery worker.
func NewDispatcher(sender Sender, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{sender: sender, logger: logger, done: make(chan struct{})}
	d.cond = sync.NewCond(&d.mu)
	go d.work()
	return d
}

// Enqueue appends msg to the delivery queue. Enqueue after Shutdown is
// a programmer error and panics.
func (d *Dispatcher) Enqueue(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		panic("notify: Enqueue after Shutdown")
	}
	d.queue = append(d.queue, msg)
	d.cond.Signal()
}

// Shutdown stops accepting messages and blocks until every message
// enqueued before the call has had one delivery attempt.
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		d.cond.Signal()
	}
	d.mu.Unlock()
	<-d.done
}

func (d *Dispatcher) work() {
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if len(d.queue) == 0 {
			d.mu.Unlock()
			close(d.done)
			return
		}
		msg := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		if err := d.sender.Send(msg); err != nil {
			d.logger.Error("failed to send telegram message", "error", err)
		}
	}
}
