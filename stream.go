package coordconv

// EventStream delivers InteractionEvents to its subscribers synchronously, in
// publish order. An event published from inside a subscriber is queued and
// delivered once the current event has reached every subscriber, so no
// subscriber ever sees events out of order.
type EventStream struct {
	subs       []subscriber
	nextID     uint32
	pending    []InteractionEvent
	delivering bool
}

type subscriber struct {
	id uint32
	fn func(InteractionEvent)
}

// Subscription allows removing a subscriber registered with Subscribe.
type Subscription struct {
	stream *EventStream
	id     uint32
}

// NewEventStream creates an empty stream.
func NewEventStream() *EventStream {
	return &EventStream{}
}

// Subscribe registers fn to receive every subsequently published event.
func (s *EventStream) Subscribe(fn func(InteractionEvent)) Subscription {
	s.nextID++
	s.subs = append(s.subs, subscriber{id: s.nextID, fn: fn})
	return Subscription{stream: s, id: s.nextID}
}

// Cancel unregisters the subscriber. Safe to call more than once.
func (sub Subscription) Cancel() {
	if sub.stream == nil {
		return
	}
	subs := sub.stream.subs
	for i, e := range subs {
		if e.id == sub.id {
			sub.stream.subs = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of registered subscribers.
func (s *EventStream) Subscribers() int {
	return len(s.subs)
}

// Publish delivers ev to every subscriber before returning, unless called
// from within a delivery, in which case ev is delivered after the current one.
func (s *EventStream) Publish(ev InteractionEvent) {
	if ev == nil {
		return
	}
	s.pending = append(s.pending, ev)
	if s.delivering {
		return
	}
	s.delivering = true
	defer func() {
		// A panicking subscriber abandons whatever was still queued.
		clear(s.pending)
		s.pending = s.pending[:0]
		s.delivering = false
	}()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending[0] = nil
		s.pending = s.pending[1:]
		for _, sub := range s.subs {
			sub.fn(next)
		}
	}
}
