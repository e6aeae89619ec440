package cargo

import (
	"sync"
)

// DomainEvent is a notification raised by the cargo aggregate after its delivery
// status has been recomputed.
type DomainEvent interface {
	// Name identifies the kind of event, e.g. "cargo.misdirected".
	Name() string
	// Cargo returns the aggregate that raised the event.
	Cargo() *Cargo
}

// EventPublisher receives cargo events. Publish must not block.
type EventPublisher interface {
	Publish(event DomainEvent)
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(DomainEvent) {}

// AssignedToRouteEvent is raised when a cargo gets a new itinerary.
type AssignedToRouteEvent struct {
	cargo        *Cargo
	oldItinerary *Itinerary
}

// Name returns "cargo.assigned_to_route".
func (e AssignedToRouteEvent) Name() string { return "cargo.assigned_to_route" }

// Cargo returns the rerouted cargo.
func (e AssignedToRouteEvent) Cargo() *Cargo { return e.cargo }

// OldItinerary returns the itinerary before the assignment, nil if the cargo was not routed.
func (e AssignedToRouteEvent) OldItinerary() *Itinerary { return e.oldItinerary }

// MisdirectedEvent is raised when the last handling of a cargo contradicts its itinerary.
type MisdirectedEvent struct {
	cargo *Cargo
}

// Name returns "cargo.misdirected".
func (e MisdirectedEvent) Name() string { return "cargo.misdirected" }

// Cargo returns the misdirected cargo.
func (e MisdirectedEvent) Cargo() *Cargo { return e.cargo }

// ArrivedEvent is raised when a cargo has been unloaded at its destination.
type ArrivedEvent struct {
	cargo *Cargo
}

// Name returns "cargo.arrived".
func (e ArrivedEvent) Name() string { return "cargo.arrived" }

// Cargo returns the arrived cargo.
func (e ArrivedEvent) Cargo() *Cargo { return e.cargo }

// EventBuffer is an EventPublisher that keeps events until Flush. Application code
// passes a buffer to the aggregate and flushes it once the change is committed, so
// collaborators never hear about changes that were rolled back.
type EventBuffer struct {
	mu     sync.Mutex
	events []DomainEvent
}

// NewEventBuffer creates an empty buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Publish appends the event to the buffer.
func (b *EventBuffer) Publish(event DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

// Events returns the buffered events in the order they were published.
func (b *EventBuffer) Events() []DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]DomainEvent(nil), b.events...)
}

// Flush publishes the buffered events to publisher and empties the buffer.
// A nil publisher drops them.
func (b *EventBuffer) Flush(publisher EventPublisher) {
	b.mu.Lock()
	events := b.events
	b.events = nil
	b.mu.Unlock()

	if publisher == nil {
		return
	}
	for _, e := range events {
		publisher.Publish(e)
	}
}
