package commands

import (
	"context"

	"resbook/internal/domain/reservation"
	"resbook/internal/domain/resource"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/commands/notifier_mock.go -package=commandsmock resbook/internal/usecase/commands Notifier

// Notifier is the outbound notification port. Calls are made outside any
// resource lock; failures are logged by the caller, never propagated.
type Notifier interface {
	NotifyAllocated(ctx context.Context, r *reservation.Reservation) error
	NotifyReleased(ctx context.Context, r *reservation.Reservation) error
}

// Catalog is the resource definition store as the write side sees it.
type Catalog interface {
	Create(r *resource.Resource) error
	FindByID(id uuid.UUID) (*resource.Resource, error)
	FindByCapacity(minCap int) []*resource.Resource
	FindByVehicle(v resource.VehicleType) []*resource.Resource
}

// ReservationStore is the active-reservation store as the write side sees it.
// Save rejects a reservation whose occupant already holds an overlapping
// active one with a Conflict store error; the store is the only place that
// check is atomic across resources.
type ReservationStore interface {
	Save(r *reservation.Reservation) error
	Remove(id uuid.UUID) error
	MarkReleased(id uuid.UUID, released *reservation.Reservation) error
	FindByID(id uuid.UUID) (*reservation.Reservation, error)
	FindActiveByOccupant(occupant string) []*reservation.Reservation
	FindByResourceOverlapping(resourceID uuid.UUID, w reservation.Window) []*reservation.Reservation
	HasActive(resourceID uuid.UUID) bool
}

// LockRegistry serializes the check-then-write section per resource.
type LockRegistry interface {
	Register(id uuid.UUID)
	WithLock(id uuid.UUID, fn func() error) error
	TryWithLock(id uuid.UUID, fn func() error) (bool, error)
}
