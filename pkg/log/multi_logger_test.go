package log

import (
	"sync"
	"testing"
	"time"
)

// captureLogger records events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestMultiLoggerFansOut(t *testing.T) {
	first := &captureLogger{}
	second := &captureLogger{}
	multi := NewMultiLogger(first, second)

	event := Event{
		Timestamp: time.Now(),
		SessionID: "session-1",
		Direction: DirectionIn,
		Layer:     LayerWire,
		Category:  CategoryMessage,
	}
	multi.Log(event)
	multi.Log(event)

	if first.count() != 2 {
		t.Errorf("first logger received %d events, want 2", first.count())
	}
	if second.count() != 2 {
		t.Errorf("second logger received %d events, want 2", second.count())
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()

	// Must not panic with no destinations.
	multi.Log(Event{
		Timestamp: time.Now(),
		SessionID: "session-1",
	})
}

func TestNoopLogger(t *testing.T) {
	var logger Logger = NoopLogger{}

	// Must accept events without effect.
	logger.Log(Event{Timestamp: time.Now()})
}
