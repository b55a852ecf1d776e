package queries

import (
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/domain/resource"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID         uuid.UUID  `json:"id"`
	ResourceID uuid.UUID  `json:"resource_id"`
	Occupant   string     `json:"occupant"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

type ResourceView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Capacity int       `json:"capacity,omitempty"`
	SpotType string    `json:"spot_type,omitempty"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		ID:         r.ID(),
		ResourceID: r.ResourceID(),
		Occupant:   r.Occupant(),
		Start:      r.Window().Start(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
	}
	if end, ok := r.Window().End(); ok {
		v.End = &end
	}
	if at, ok := r.ReleasedAt(); ok {
		v.ReleasedAt = &at
	}
	return v
}

func NewResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:       r.ID(),
		Name:     r.Name(),
		Kind:     string(r.Kind()),
		Capacity: r.Capacity(),
		SpotType: string(r.SpotType()),
	}
}
