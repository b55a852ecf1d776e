package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOccupant   = errors.New("occupant reference cannot be empty")
	ErrAlreadyReleased = errors.New("reservation is already released")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusReleased Status = "released"
)

func (s Status) String() string {
	return string(s)
}

// Reservation binds an occupant to one resource for a window. The id is
// assigned at commit time by the caller; the store owns persisted copies.
type Reservation struct {
	id         uuid.UUID
	resourceID uuid.UUID
	occupant   string
	window     Window
	status     Status
	createdAt  time.Time
	releasedAt *time.Time
}

func NewReservation(id, resourceID uuid.UUID, occupant string, window Window, now time.Time) (*Reservation, error) {
	if occupant == "" {
		return nil, ErrEmptyOccupant
	}
	return &Reservation{
		id:         id,
		resourceID: resourceID,
		occupant:   occupant,
		window:     window,
		status:     StatusActive,
		createdAt:  now,
	}, nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) Occupant() string      { return r.occupant }
func (r *Reservation) Window() Window        { return r.window }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ReleasedAt() (time.Time, bool) {
	if r.releasedAt == nil {
		return time.Time{}, false
	}
	return *r.releasedAt, true
}

// Release stamps the end of an open-ended reservation and marks it
// released. Interval reservations are removed from the store instead, so
// this only applies to exclusive-occupancy records kept for audit.
func (r *Reservation) Release(at time.Time) error {
	if r.status == StatusReleased {
		return ErrAlreadyReleased
	}
	r.status = StatusReleased
	r.releasedAt = &at
	if r.window.open {
		r.window = Window{start: r.window.start, end: at}
	}
	return nil
}

// Clone returns an independent copy so store internals never alias entities
// handed to callers.
func (r *Reservation) Clone() *Reservation {
	cp := *r
	if r.releasedAt != nil {
		t := *r.releasedAt
		cp.releasedAt = &t
	}
	return &cp
}
