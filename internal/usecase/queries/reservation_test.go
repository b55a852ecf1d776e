//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/domain/resource"
	"resbook/internal/infra/memstore"
	"resbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

type readFixture struct {
	catalog     *memstore.Catalog
	store       *memstore.ReservationStore
	reservation queries.ReservationQueries
	resources   queries.ResourceQueries
}

func newReadFixture() *readFixture {
	catalog := memstore.NewCatalog()
	store := memstore.NewReservationStore()
	return &readFixture{
		catalog:     catalog,
		store:       store,
		reservation: queries.NewReservationQueries(store, catalog),
		resources:   queries.NewResourceQueries(catalog, store),
	}
}

func (f *readFixture) addRoom(t *testing.T, name string, capacity int) uuid.UUID {
	t.Helper()
	r, err := resource.NewIntervalResource(uuid.New(), name, capacity)
	require.NoError(t, err)
	require.NoError(t, f.catalog.Create(r))
	return r.ID()
}

func (f *readFixture) addSpot(t *testing.T, name string, st resource.SpotType) uuid.UUID {
	t.Helper()
	r, err := resource.NewExclusiveResource(uuid.New(), name, st)
	require.NoError(t, err)
	require.NoError(t, f.catalog.Create(r))
	return r.ID()
}

func (f *readFixture) book(t *testing.T, resourceID uuid.UUID, occupant string, startHour, endHour int) uuid.UUID {
	t.Helper()
	w, err := reservation.NewWindow(t0.Add(time.Duration(startHour)*time.Hour), t0.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	r, err := reservation.NewReservation(uuid.New(), resourceID, occupant, w, t0)
	require.NoError(t, err)
	require.NoError(t, f.store.Save(r))
	return r.ID()
}

func (f *readFixture) park(t *testing.T, resourceID uuid.UUID, occupant string) uuid.UUID {
	t.Helper()
	r, err := reservation.NewReservation(uuid.New(), resourceID, occupant, reservation.NewOpenWindow(t0), t0)
	require.NoError(t, err)
	require.NoError(t, f.store.Save(r))
	return r.ID()
}

func TestGetByID(t *testing.T) {
	f := newReadFixture()
	roomID := f.addRoom(t, "Board Room", 4)
	resID := f.book(t, roomID, "alice", 9, 10)

	view, err := f.reservation.GetByID(context.Background(), resID)
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Occupant)
	assert.Equal(t, roomID, view.ResourceID)
	assert.Equal(t, "active", view.Status)
	require.NotNil(t, view.End)
	assert.Equal(t, t0.Add(10*time.Hour), *view.End)

	_, err = f.reservation.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, queries.ErrReservationNotFound)
}

func TestListForResourceAndDay(t *testing.T) {
	f := newReadFixture()
	roomID := f.addRoom(t, "Board Room", 4)
	otherID := f.addRoom(t, "Huddle", 2)

	f.book(t, roomID, "alice", 9, 10)
	f.book(t, roomID, "bob", 14, 15)
	f.book(t, roomID, "carol", 30, 31) // next day
	f.book(t, otherID, "dave", 9, 10)

	views, err := f.reservation.ListForResourceAndDay(context.Background(), roomID, t0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].Occupant)
	assert.Equal(t, "bob", views[1].Occupant)

	// An overnight booking shows up on both days it touches
	f.book(t, roomID, "erin", 23, 25)
	views, err = f.reservation.ListForResourceAndDay(context.Background(), roomID, t0.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "erin", views[0].Occupant)
	assert.Equal(t, "carol", views[1].Occupant)

	_, err = f.reservation.ListForResourceAndDay(context.Background(), uuid.New(), t0)
	require.ErrorIs(t, err, queries.ErrResourceNotFound)
}

func TestListByOccupant(t *testing.T) {
	f := newReadFixture()
	roomID := f.addRoom(t, "Board Room", 4)
	f.book(t, roomID, "alice", 14, 15)
	f.book(t, roomID, "alice", 9, 10)
	f.book(t, roomID, "bob", 11, 12)

	views, err := f.reservation.ListByOccupant(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Start.Before(views[1].Start))

	views, err = f.reservation.ListByOccupant(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, views)
}
