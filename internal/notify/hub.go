// Package notify provides an in-process invalidation hub: services signal
// "table changed", consumers re-fetch. It deliberately carries no payload
// and no transport; the presentation layer decides how to surface it.
package notify

import "sync"

type subscriber chan struct{}

type Hub struct {
	mu   sync.Mutex
	subs map[string]map[subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[subscriber]struct{})}
}

// Subscribe registers interest in a table. The returned channel receives at
// most one pending signal; coalescing is fine because consumers always
// re-fetch the full list. The cancel func must be called to release the
// subscription.
func (h *Hub) Subscribe(table string) (<-chan struct{}, func()) {
	ch := make(subscriber, 1)

	h.mu.Lock()
	if h.subs[table] == nil {
		h.subs[table] = make(map[subscriber]struct{})
	}
	h.subs[table][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[table], ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Notify signals every subscriber of the table. Never blocks: a subscriber
// with a signal already pending keeps the one it has.
func (h *Hub) Notify(tables ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, table := range tables {
		for ch := range h.subs[table] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}
