// Package livequery implements push-based reads over a mutable store: a
// subscription delivers a current snapshot and a refreshed snapshot after
// every mutation published on the matching topic.
package livequery

import "sync"

// Hub fans change notifications out to topic subscribers. Notifications are
// coalescing signals, not payloads; observers re-query on each signal.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[int64]chan struct{}
	next int64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int64]chan struct{})}
}

// Notify signals every subscriber of the given topics. A subscriber with a
// signal already pending is not signalled again; its next re-query covers
// both mutations.
func (h *Hub) Notify(topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range topics {
		for _, ch := range h.subs[topic] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

// Subscribe registers a listener on topic. The returned cancel function must
// be called to release the subscription.
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int64]chan struct{})
	}
	h.next++
	id := h.next
	ch := make(chan struct{}, 1)
	h.subs[topic][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if listeners, ok := h.subs[topic]; ok {
			delete(listeners, id)
			if len(listeners) == 0 {
				delete(h.subs, topic)
			}
		}
	}
	return ch, cancel
}
