package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestQueue() (*Queue, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	q := NewQueue(5 * time.Second)
	q.SetClock(clock.now)
	return q, clock
}

func TestPushKeepsOrderAndDuplicates(t *testing.T) {
	q, _ := newTestQueue()

	a := q.Push("Saved", Success)
	b := q.Push("Saved", Success)
	c := q.Push("Oops", Error)

	items := q.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, Error, items[2].Severity)
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewQueue(0).TTL())
	assert.Equal(t, 5*time.Second, DefaultTTL)
}

func TestExpiryAfterTTL(t *testing.T) {
	q, clock := newTestQueue()
	msg := q.Push("hello", Info)
	assert.Equal(t, msg.CreatedAt.Add(5*time.Second), msg.ExpiresAt)

	clock.advance(4 * time.Second)
	q.Prune()
	assert.Equal(t, 1, q.Len())

	clock.advance(1 * time.Second)
	q.Prune()
	assert.Equal(t, 0, q.Len())
}

func TestExpireCallback(t *testing.T) {
	q, _ := newTestQueue()
	a := q.Push("a", Info)
	b := q.Push("b", Info)

	q.Expire(a.ID)
	items := q.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	q.Expire(a.ID)
	assert.Equal(t, 1, q.Len())
}

func TestDismissEarly(t *testing.T) {
	q, clock := newTestQueue()
	msg := q.Push("bye", Success)

	clock.advance(2 * time.Second)
	assert.True(t, q.Dismiss(msg.ID))
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Dismiss(msg.ID))
}

func TestLatest(t *testing.T) {
	q, _ := newTestQueue()
	_, ok := q.Latest()
	assert.False(t, ok)

	q.Push("one", Info)
	two := q.Push("two", Error)
	latest, ok := q.Latest()
	assert.True(t, ok)
	assert.Equal(t, two.ID, latest.ID)
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "✓", Toast{Severity: Success}.Icon())
	assert.Equal(t, "×", Toast{Severity: Error}.Icon())
	assert.Equal(t, "ℹ", Toast{Severity: Info}.Icon())
}
