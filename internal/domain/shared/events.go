// Package shared holds building blocks common to all domain packages.
package shared

import "time"

// DomainEvent represents an event that has occurred in the domain.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// AggregateRoot is the base type for aggregate roots. Events accumulate on
// the aggregate until the application layer collects them for publishing.
type AggregateRoot struct {
	events []DomainEvent
}

// AddEvent records a domain event for later dispatch.
func (a *AggregateRoot) AddEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// Events returns and clears the pending domain events.
func (a *AggregateRoot) Events() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}
