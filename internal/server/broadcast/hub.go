// Package broadcast is the in-process realtime fan-out. Delivery is
// best-effort and at-most-once: events published to a topic nobody listens
// on, or to a subscriber whose buffer is full, are dropped.
package broadcast

import (
	"sync"

	"github.com/dmitrijs2005/qrattend/internal/server/metrics"
)

// Publisher is the write side of the hub.
type Publisher interface {
	Publish(topic Topic, ev Event) int
	CloseTopic(topic Topic)
}

// Subscription receives events for one topic until closed.
type Subscription struct {
	topic Topic
	ch    chan Event
	hub   *Hub
	once  sync.Once
}

// Events returns the receive channel. It is closed when the subscription is
// closed by either side.
func (s *Subscription) Events() <-chan Event { return s.ch }

func (s *Subscription) Topic() Topic { return s.topic }

// Close detaches the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.remove(s)
}

// Hub fans events out to subscribers by topic.
type Hub struct {
	mu     sync.RWMutex
	subs   map[Topic]map[*Subscription]struct{}
	buffer int
}

// NewHub creates a hub whose subscribers buffer up to buffer events each.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{subs: make(map[Topic]map[*Subscription]struct{}), buffer: buffer}
}

// Subscribe registers a new subscriber on topic.
func (h *Hub) Subscribe(topic Topic) *Subscription {
	s := &Subscription{topic: topic, ch: make(chan Event, h.buffer), hub: h}

	h.mu.Lock()
	set, ok := h.subs[topic]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[topic] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	metrics.Subscribers.WithLabelValues(string(topic.Kind)).Inc()
	return s
}

// Publish delivers ev to every subscriber of topic without blocking and
// returns how many received it.
func (h *Hub) Publish(topic Topic, ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.subs[topic] {
		select {
		case s.ch <- ev:
			delivered++
		default:
			metrics.EventsDropped.WithLabelValues(ev.Type).Inc()
		}
	}
	if delivered > 0 {
		metrics.EventsPublished.WithLabelValues(ev.Type).Add(float64(delivered))
	}
	return delivered
}

// CloseTopic detaches every subscriber of topic, closing their channels.
func (h *Hub) CloseTopic(topic Topic) {
	h.mu.Lock()
	set := h.subs[topic]
	delete(h.subs, topic)
	h.mu.Unlock()

	for s := range set {
		s.closeChan()
	}
}

// Close detaches all subscribers.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.subs
	h.subs = make(map[Topic]map[*Subscription]struct{})
	h.mu.Unlock()

	for _, set := range all {
		for s := range set {
			s.closeChan()
		}
	}
}

// Subscribers returns the number of subscribers on topic.
func (h *Hub) Subscribers(topic Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	set, ok := h.subs[s.topic]
	if ok {
		if _, found := set[s]; !found {
			ok = false
		} else {
			delete(set, s)
			if len(set) == 0 {
				delete(h.subs, s.topic)
			}
		}
	}
	h.mu.Unlock()

	if ok {
		s.closeChan()
	}
}

// closeChan runs after s has left the map under the write lock, so no
// Publish can be sending on ch.
func (s *Subscription) closeChan() {
	s.once.Do(func() {
		close(s.ch)
		metrics.Subscribers.WithLabelValues(string(s.topic.Kind)).Dec()
	})
}
