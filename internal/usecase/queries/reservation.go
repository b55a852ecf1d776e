package queries

import (
	"context"
	"sort"
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/domain/resource"
	"resbook/internal/infra"
	"resbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound    = errs.New("resource not found")
	ErrReservationNotFound = errs.New("reservation not found")
)

// ReservationReadStore is the store surface the read side needs. Reads go
// through the store's shared lock only; no resource lock is taken.
type ReservationReadStore interface {
	FindByID(id uuid.UUID) (*reservation.Reservation, error)
	FindByResourceOverlapping(resourceID uuid.UUID, w reservation.Window) []*reservation.Reservation
	FindByResourceOnDay(resourceID uuid.UUID, dayStart time.Time) []*reservation.Reservation
	FindActiveByOccupant(occupant string) []*reservation.Reservation
	HasActive(resourceID uuid.UUID) bool
}

type CatalogReader interface {
	FindByID(id uuid.UUID) (*resource.Resource, error)
	FindByCapacity(minCap int) []*resource.Resource
	FindByVehicle(v resource.VehicleType) []*resource.Resource
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForResourceAndDay(ctx context.Context, resourceID uuid.UUID, day time.Time) ([]*ReservationView, error)
	ListByOccupant(ctx context.Context, occupant string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store   ReservationReadStore
	catalog CatalogReader
}

func NewReservationQueries(store ReservationReadStore, catalog CatalogReader) ReservationQueries {
	return &reservationQueriesImpl{store: store, catalog: catalog}
}

func (q *reservationQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "look up reservation")
	}
	return NewReservationView(r), nil
}

// ListForResourceAndDay returns active reservations touching the calendar
// day starting at day (truncated to midnight in day's location).
func (q *reservationQueriesImpl) ListForResourceAndDay(_ context.Context, resourceID uuid.UUID, day time.Time) ([]*ReservationView, error) {
	if _, err := q.catalog.FindByID(resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Wrap(err, "look up resource")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	found := q.store.FindByResourceOnDay(resourceID, dayStart)
	sort.Slice(found, func(i, j int) bool {
		return found[i].Window().Start().Before(found[j].Window().Start())
	})

	views := make([]*ReservationView, len(found))
	for i, r := range found {
		views[i] = NewReservationView(r)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByOccupant(_ context.Context, occupant string) ([]*ReservationView, error) {
	found := q.store.FindActiveByOccupant(occupant)
	sort.Slice(found, func(i, j int) bool {
		return found[i].Window().Start().Before(found[j].Window().Start())
	})
	views := make([]*ReservationView, len(found))
	for i, r := range found {
		views[i] = NewReservationView(r)
	}
	return views, nil
}
