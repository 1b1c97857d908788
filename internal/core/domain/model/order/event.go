package order

import "time"

// EventKind names what happened to an order.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event is a snapshot of an order taken right after a committed change.
type Event struct {
	Kind         EventKind
	OrderID      string
	DeliverTo    string
	MobileNumber string
	Status       Status
	Lines        []Line
	OccurredAt   time.Time
}

// NewEvent snapshots o.
func NewEvent(kind EventKind, o *Order, occurredAt time.Time) Event {
	return Event{
		Kind:         kind,
		OrderID:      o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status(),
		Lines:        o.Lines(),
		OccurredAt:   occurredAt,
	}
}
