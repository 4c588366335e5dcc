// Package event holds the read model of events, ticket types and seat
// availability translated from the reservation backend.
package event

import (
	"slices"
	"time"
)

// Allocator names which backend holds the seat inventory of an event.
type Allocator string

const (
	AllocatorCatalog Allocator = "catalog"
	AllocatorLegacy  Allocator = "legacy"
)

// IsValid returns true if the allocator is one of the defined constants.
func (a Allocator) IsValid() bool {
	return a == AllocatorCatalog || a == AllocatorLegacy
}

// Event is a performance that seats can be reserved for.
type Event struct {
	ID          string
	Name        string
	StartDate   time.Time
	Allocator   Allocator
	TicketTypes []TicketType
}

// TicketType is one purchasable offer of an event. Category is set for
// scarce seating (wheelchair spaces and similar) whose reservations are
// rate limited.
type TicketType struct {
	ID       string
	Name     string
	Price    int64
	Category string
}

// TicketType returns the ticket type with id.
func (e *Event) TicketType(id string) (TicketType, bool) {
	i := slices.IndexFunc(e.TicketTypes, func(t TicketType) bool { return t.ID == id })
	if i < 0 {
		return TicketType{}, false
	}
	return e.TicketTypes[i], true
}

// Seat is the availability of one seat.
type Seat struct {
	Section   string
	Number    string
	Available bool
}

// Key identifies a seat within an event.
func (s Seat) Key() string {
	return s.Section + "/" + s.Number
}
