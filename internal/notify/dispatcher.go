// Package notify selects affirmation messages for task lifecycle events and
// exposes them through a single transient display slot.
package notify

import (
	"sync"
	"time"

	"github.com/stardustlabs/stardust/internal/domain"
)

// Dispatcher holds at most one current message. A new event replaces the
// visible message immediately; there is no queue. The message expires after
// the configured duration.
type Dispatcher struct {
	clock     domain.Clock
	rand      domain.Rand
	message   string
	expiresAt time.Time
	duration  time.Duration
	mu        sync.Mutex
}

// NewDispatcher creates a Dispatcher. A non-positive duration falls back to
// the default display duration.
func NewDispatcher(clock domain.Clock, rand domain.Rand, duration time.Duration) *Dispatcher {
	if duration <= 0 {
		duration = domain.DefaultNotificationMS * time.Millisecond
	}
	return &Dispatcher{
		clock:    clock,
		rand:     rand,
		duration: duration,
	}
}

// TaskCreated shows a random created-event affirmation.
func (d *Dispatcher) TaskCreated() {
	d.show(domain.CreatedMessages)
}

// TaskCompleted shows a random completed-event affirmation.
func (d *Dispatcher) TaskCompleted() {
	d.show(domain.CompletedMessages)
}

// show picks uniformly from the list and restarts the display window.
func (d *Dispatcher) show(messages []string) {
	if len(messages) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.message = messages[d.rand.IntN(len(messages))]
	d.expiresAt = d.clock.Now().Add(d.duration)
}

// Current returns the live message, or false once it has expired or been
// dismissed.
func (d *Dispatcher) Current() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.message == "" || !d.clock.Now().Before(d.expiresAt) {
		return "", false
	}
	return d.message, true
}

// Dismiss clears the slot before the duration elapses.
func (d *Dispatcher) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.message = ""
}

// Duration returns the configured display duration.
func (d *Dispatcher) Duration() time.Duration {
	return d.duration
}

// Ensure Dispatcher implements Notifier.
var _ domain.Notifier = (*Dispatcher)(nil)
