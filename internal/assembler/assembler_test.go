package assembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestAddJoinsFragments(t *testing.T) {
	clock := newFakeClock()
	a := New(clock.Now)
	first := clock.Now()

	_, ok := a.Add("a", false)
	assert.False(t, ok)
	assert.True(t, a.Pending())

	clock.Advance(time.Second)
	_, ok = a.Add("b", false)
	assert.False(t, ok)

	clock.Advance(time.Second)
	msg, ok := a.Add("c", true)
	require.True(t, ok)
	assert.Equal(t, "abc", msg.Text)
	assert.Equal(t, first, msg.ReceivedAt)
	assert.False(t, a.Pending())
}

func TestAddIndependentMessages(t *testing.T) {
	clock := newFakeClock()
	a := New(clock.Now)

	first, ok := a.Add(`{"n":1}`, true)
	require.True(t, ok)

	clock.Advance(time.Millisecond)
	second, ok := a.Add(`{"n":2}`, true)
	require.True(t, ok)

	assert.Equal(t, `{"n":1}`, first.Text)
	assert.Equal(t, `{"n":2}`, second.Text)
	assert.False(t, second.ReceivedAt.Before(first.ReceivedAt))
	assert.Equal(t, time.Millisecond, second.ReceivedAt.Sub(first.ReceivedAt))
}

func TestAddStartsFreshAfterFinal(t *testing.T) {
	clock := newFakeClock()
	a := New(clock.Now)

	_, ok := a.Add("one", true)
	require.True(t, ok)

	clock.Advance(time.Minute)
	start := clock.Now()
	_, ok = a.Add("tw", false)
	require.False(t, ok)

	clock.Advance(time.Second)
	msg, ok := a.Add("o", true)
	require.True(t, ok)
	assert.Equal(t, "two", msg.Text)
	assert.Equal(t, start, msg.ReceivedAt)
}

func TestAddEmptyFinalFragment(t *testing.T) {
	a := New(nil)

	_, ok := a.Add("partial", false)
	require.False(t, ok)

	msg, ok := a.Add("", true)
	require.True(t, ok)
	assert.Equal(t, "partial", msg.Text)
	assert.False(t, msg.ReceivedAt.IsZero())
}
