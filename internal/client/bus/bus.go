// Package bus implements the change-notification channel shared by the cart
// surfaces. A publish carries no payload: subscribers are expected to refetch
// the snapshot themselves, so there is exactly one source of truth and no
// partially pushed state.
package bus

import "sync"

type subscription struct {
	id      int64
	handler func()
}

// Broadcaster is a process-wide, single-signal publish/subscribe channel.
//
// Contract:
//   - Subscribe registers a handler and returns a cancel func that must be
//     called on consumer teardown.
//   - Publish invokes the active handlers synchronously, in registration
//     order, on the calling goroutine. Publish never fails.
//   - Rapid repeated publishes are not coalesced; each one runs every handler.
//
// A handler that needs to report a failure must handle it itself; the
// broadcaster ignores handler outcomes so one consumer cannot affect another.
type Broadcaster struct {
	mu     sync.Mutex
	nextId int64
	subs   []subscription
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers handler and returns its cancel func. Calling cancel
// more than once is harmless.
func (b *Broadcaster) Subscribe(handler func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextId
	b.nextId++
	b.subs = append(b.subs, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish runs every active handler once. The subscriber list is snapshotted
// under the lock, so a handler may subscribe or cancel without deadlocking;
// such changes take effect from the next publish.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	active := make([]subscription, len(b.subs))
	copy(active, b.subs)
	b.mu.Unlock()

	for _, s := range active {
		s.handler()
	}
}

// Len reports the number of active subscriptions.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
