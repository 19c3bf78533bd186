// Package toast holds short-lived notifications about the outcome of user
// actions.
package toast

import (
	"time"

	"github.com/google/uuid"
)

// Severity of a notification
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// DefaultTTL is how long a toast stays visible without dismissal
const DefaultTTL = 5 * time.Second

// Toast is one visible notification
type Toast struct {
	ID        string
	Text      string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Icon returns the glyph shown next to the text
func (t Toast) Icon() string {
	switch t.Severity {
	case Success:
		return "✓"
	case Error:
		return "×"
	default:
		return "ℹ"
	}
}

// Queue keeps toasts in push order. Identical texts are never merged.
type Queue struct {
	items []Toast
	ttl   time.Duration
	now   func() time.Time
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl, now: time.Now}
}

// SetClock replaces the time source
func (q *Queue) SetClock(now func() time.Time) {
	q.now = now
}

func (q *Queue) TTL() time.Duration { return q.ttl }

// Push appends a toast; the caller schedules Expire(id) after TTL
func (q *Queue) Push(text string, severity Severity) Toast {
	created := q.now()
	t := Toast{
		ID:        uuid.NewString(),
		Text:      text,
		Severity:  severity,
		CreatedAt: created,
		ExpiresAt: created.Add(q.ttl),
	}
	q.items = append(q.items, t)
	return t
}

// Dismiss removes a toast early. It reports whether the id was present.
func (q *Queue) Dismiss(id string) bool {
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Expire is the timer callback for a toast; already-dismissed ids are ignored
func (q *Queue) Expire(id string) {
	q.Dismiss(id)
}

// Prune drops every toast whose expiry has passed
func (q *Queue) Prune() {
	now := q.now()
	kept := q.items[:0]
	for _, t := range q.items {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	q.items = kept
}

// Items returns the live toasts in push order
func (q *Queue) Items() []Toast {
	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int { return len(q.items) }

// Latest returns the most recently pushed toast still in the queue
func (q *Queue) Latest() (Toast, bool) {
	if len(q.items) == 0 {
		return Toast{}, false
	}
	return q.items[len(q.items)-1], true
}
