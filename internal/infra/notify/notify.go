// Package notify implements the notification port. Dispatch is
// fire-and-forget from the service's point of view: failures are logged by
// the caller, never propagated to the reservation outcome.
package notify

import (
	"time"

	"resbook/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	EventAllocated = "reservation_allocated"
	EventReleased  = "reservation_released"
)

// Event is the wire shape shared by all notifier backends.
type Event struct {
	Kind          string    `json:"kind"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	Occupant      string    `json:"occupant"`
	Window        string    `json:"window"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(kind string, r *reservation.Reservation, at time.Time) Event {
	return Event{
		Kind:          kind,
		ReservationID: r.ID(),
		ResourceID:    r.ResourceID(),
		Occupant:      r.Occupant(),
		Window:        r.Window().String(),
		OccurredAt:    at,
	}
}
