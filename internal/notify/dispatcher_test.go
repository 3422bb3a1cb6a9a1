package notify

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingSender struct {
	mu    sync.Mutex
	delay time.Duration
	fail  func(msg string) error
	sent  []string
}

func (s *recordingSender) Send(msg string) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()
	if s.fail != nil {
		return s.fail(msg)
	}
	return nil
}

func (s *recordingSender) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

func TestDispatcherPreservesEnqueueOrder(t *testing.T) {
	sender := &recordingSender{delay: 5 * time.Millisecond}
	d := NewDispatcher(sender, discardLogger())
	var want []string
	for i := 0; i < 10; i++ {
		msg := fmt.Sprintf("msg-%d", i)
		want = append(want, msg)
		d.Enqueue(msg)
	}
	d.Shutdown()

	got := sender.snapshot()
	if len(got) != len(want) {
		t.Fatalf("delivered %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestDispatcherShutdownDrainsQueue(t *testing.T) {
	sender := &recordingSender{delay: 10 * time.Millisecond}
	d := NewDispatcher(sender, discardLogger())
	d.Enqueue("first")
	d.Enqueue("second")
	d.Shutdown()
	if got := sender.snapshot(); len(got) != 2 {
		t.Fatalf("shutdown returned before drain: %v", got)
	}
}

func TestDispatcherDeliveryFailureDoesNotStopWorker(t *testing.T) {
	sender := &recordingSender{fail: func(msg string) error {
		if msg == "bad" {
			return errors.New("endpoint unreachable")
		}
		return nil
	}}
	d := NewDispatcher(sender, discardLogger())
	d.Enqueue("bad")
	d.Enqueue("good")
	d.Shutdown()
	got := sender.snapshot()
	if len(got) != 2 || got[1] != "good" {
		t.Fatalf("worker stopped after failure: %v", got)
	}
}

func TestDispatcherEnqueueAfterShutdownPanics(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, discardLogger())
	d.Shutdown()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	d.Enqueue("too late")
}

func TestDispatcherEnqueueDoesNotBlockOnSlowSender(t *testing.T) {
	sender := &recordingSender{delay: 50 * time.Millisecond}
	d := NewDispatcher(sender, discardLogger())
	start := time.Now()
	for i := 0; i < 20; i++ {
		d.Enqueue("queued")
	}
	if elapsed := time.Since(start); elapsed > 40*time.Millisecond {
		t.Fatalf("enqueue blocked for %v", elapsed)
	}
	d.Shutdown()
}
