package queries

import (
	"context"
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/domain/resource"
	"resbook/internal/pkg/errs"
)

var ErrInvalidQueryWindow = errs.New("invalid availability window")

// AvailabilityParams mirrors the allocation constraints: MinCapacity for
// interval resources, Vehicle for exclusive ones. End may be nil only for
// the exclusive case.
type AvailabilityParams struct {
	MinCapacity int
	Vehicle     resource.VehicleType
	Start       time.Time
	End         *time.Time
}

type ResourceQueries interface {
	FindAvailable(ctx context.Context, p AvailabilityParams) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	catalog CatalogReader
	store   ReservationReadStore
}

func NewResourceQueries(catalog CatalogReader, store ReservationReadStore) ResourceQueries {
	return &resourceQueriesImpl{catalog: catalog, store: store}
}

// FindAvailable lists matching resources free for the queried window. The
// result is advisory: availability can change before a later allocate, which
// re-validates under the resource lock. A resource holding a conflicting
// reservation is never listed.
func (q *resourceQueriesImpl) FindAvailable(_ context.Context, p AvailabilityParams) ([]*ResourceView, error) {
	if p.Vehicle != "" {
		if _, err := buildWindow(p.Start, p.End); err != nil {
			return nil, err
		}
		// Exclusive occupancy: a spot with any active reservation is taken,
		// regardless of the queried window.
		var out []*ResourceView
		for _, r := range q.catalog.FindByVehicle(p.Vehicle) {
			if !q.store.HasActive(r.ID()) {
				out = append(out, NewResourceView(r))
			}
		}
		return out, nil
	}

	if p.End == nil {
		return nil, ErrInvalidQueryWindow
	}
	window, err := reservation.NewWindow(p.Start, *p.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQueryWindow)
	}
	var out []*ResourceView
	for _, r := range q.catalog.FindByCapacity(p.MinCapacity) {
		if len(q.store.FindByResourceOverlapping(r.ID(), window)) == 0 {
			out = append(out, NewResourceView(r))
		}
	}
	return out, nil
}

func buildWindow(start time.Time, end *time.Time) (reservation.Window, error) {
	if end == nil {
		return reservation.NewOpenWindow(start), nil
	}
	w, err := reservation.NewWindow(start, *end)
	if err != nil {
		return reservation.Window{}, errs.Mark(err, ErrInvalidQueryWindow)
	}
	return w, nil
}
