// Package bus implements the change-notification broadcast that keeps
// consumers of the data service in sync: after every committed mutation the
// service calls Notify, and every subscriber sees a payload-less signal
// telling it to re-query.
//
// This is a broadcast, not a queue. There is no replay for late
// subscribers, no delivery ordering between subscribers, and consecutive
// notifications coalesce when a subscriber hasn't drained its signal yet.
// All of that is fine because the reaction is an idempotent full re-read.
package bus

import (
	"sync"

	"github.com/google/uuid"
)

// Bus fans a payload-less change signal out to any number of subscribers.
// Safe for concurrent use. The zero value is not usable; call New.
type Bus struct {
	mu   sync.Mutex
	subs map[string]chan struct{}
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		subs: make(map[string]chan struct{}),
	}
}

// Subscribe registers a new listener and returns its token plus the signal
// channel. The channel has a one-slot buffer: pending notifications
// coalesce rather than pile up, mirroring "the store changed, re-query"
// semantics where one refresh covers any number of changes.
func (b *Bus) Subscribe() (token string, ch <-chan struct{}) {
	c := make(chan struct{}, 1)
	token = uuid.NewString()

	b.mu.Lock()
	b.subs[token] = c
	b.mu.Unlock()

	return token, c
}

// Unsubscribe detaches a listener. Unknown tokens are ignored.
// The subscriber's channel is not closed; a detached listener simply stops
// receiving signals.
func (b *Bus) Unsubscribe(token string) {
	b.mu.Lock()
	delete(b.subs, token)
	b.mu.Unlock()
}

// Notify signals every current subscriber. Never blocks: a subscriber with
// a signal already pending keeps exactly one.
func (b *Bus) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range b.subs {
		select {
		case c <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of active subscribers. Used in tests.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
