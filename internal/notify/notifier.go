// Package notify owns the single transient user-facing message. A new
// message always replaces the previous one, and each carries its own expiry:
// a superseded message's timer firing late must never blank out the newer
// message, so expiry is tied to a generation counter rather than a shared
// timer.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 3500 * time.Millisecond

// Notifier holds at most one live notification with automatic expiry.
type Notifier struct {
	mu       sync.Mutex
	message  string
	present  bool
	gen      uint64
	timer    *time.Timer
	duration time.Duration
}

// NewNotifier creates a Notifier whose messages expire after d. A
// non-positive d falls back to DefaultDuration.
func NewNotifier(d time.Duration) *Notifier {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Notifier{duration: d}
}

// Show sets the current message and schedules its expiry, replacing any
// live message and invalidating its pending timer.
func (n *Notifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	gen := n.gen
	n.message = message
	n.present = true

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.duration, func() {
		n.expire(gen)
	})
}

// Clear removes the current message immediately and cancels its expiry.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.message = ""
	n.present = false
}

// Current returns the live message, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.present
}

// expire clears the message only if gen still identifies the live one. A
// Stop that loses the race with the timer firing ends up here harmlessly.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.gen != gen {
		return
	}
	n.message = ""
	n.present = false
	n.timer = nil
}
