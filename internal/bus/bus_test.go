package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch <-chan struct{}) int {
	n := 0
	for {
		select {
		case <-ch:
			n++
		default:
			return n
		}
	}
}

func TestNotify_ReachesAllSubscribers(t *testing.T) {
	b := New()

	_, ch1 := b.Subscribe()
	_, ch2 := b.Subscribe()

	b.Notify()

	assert.Equal(t, 1, drain(ch1))
	assert.Equal(t, 1, drain(ch2))
}

func TestNotify_Coalesces(t *testing.T) {
	b := New()
	_, ch := b.Subscribe()

	b.Notify()
	b.Notify()
	b.Notify()

	assert.Equal(t, 1, drain(ch), "undrained notifications should coalesce into one signal")
}

func TestNotify_NoSubscribers(t *testing.T) {
	b := New()
	// Must not block or panic.
	b.Notify()
}

func TestUnsubscribe(t *testing.T) {
	b := New()

	token, ch := b.Subscribe()
	require.Equal(t, 1, b.Len())

	b.Unsubscribe(token)
	assert.Zero(t, b.Len())

	b.Notify()
	assert.Zero(t, drain(ch), "detached subscriber should not be signalled")
}

func TestUnsubscribe_UnknownToken(t *testing.T) {
	b := New()
	b.Unsubscribe("no-such-token")
	assert.Zero(t, b.Len())
}

func TestSubscribe_AfterNotify_SeesNothing(t *testing.T) {
	b := New()
	b.Notify()

	_, ch := b.Subscribe()
	assert.Zero(t, drain(ch), "no replay for late subscribers")
}

func TestTokens_AreUnique(t *testing.T) {
	b := New()
	t1, _ := b.Subscribe()
	t2, _ := b.Subscribe()
	assert.NotEqual(t, t1, t2)
	assert.Equal(t, 2, b.Len())
}
