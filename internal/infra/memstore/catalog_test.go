//go:build unit

package memstore_test

import (
	"sync"
	"testing"

	"resbook/internal/domain/resource"
	"resbook/internal/infra"
	"resbook/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, capacity int) *resource.Resource {
	t.Helper()
	r, err := resource.NewIntervalResource(uuid.New(), "room", capacity)
	require.NoError(t, err)
	return r
}

func newSpot(t *testing.T, st resource.SpotType) *resource.Resource {
	t.Helper()
	r, err := resource.NewExclusiveResource(uuid.New(), "spot", st)
	require.NoError(t, err)
	return r
}

func TestCatalogCreate(t *testing.T) {
	catalog := memstore.NewCatalog()
	r := newRoom(t, 4)

	require.NoError(t, catalog.Create(r))

	err := catalog.Create(r)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestCatalogFindByID(t *testing.T) {
	catalog := memstore.NewCatalog()
	r := newRoom(t, 4)
	require.NoError(t, catalog.Create(r))

	found, err := catalog.FindByID(r.ID())
	require.NoError(t, err)
	assert.Equal(t, r.ID(), found.ID())

	_, err = catalog.FindByID(uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCatalogFilters(t *testing.T) {
	catalog := memstore.NewCatalog()
	small := newRoom(t, 2)
	big := newRoom(t, 8)
	compact := newSpot(t, resource.SpotCompact)
	moto := newSpot(t, resource.SpotMotorcycle)
	for _, r := range []*resource.Resource{small, big, compact, moto} {
		require.NoError(t, catalog.Create(r))
	}

	t.Run("by capacity excludes spots and small rooms", func(t *testing.T) {
		found := catalog.FindByCapacity(4)
		require.Len(t, found, 1)
		assert.Equal(t, big.ID(), found[0].ID())
	})

	t.Run("by vehicle applies fit table", func(t *testing.T) {
		found := catalog.FindByVehicle(resource.VehicleCar)
		require.Len(t, found, 1)
		assert.Equal(t, compact.ID(), found[0].ID())

		assert.Len(t, catalog.FindByVehicle(resource.VehicleMotorcycle), 2)
		assert.Empty(t, catalog.FindByVehicle(resource.VehicleTruck))
	})

	t.Run("results sorted by id", func(t *testing.T) {
		found := catalog.FindByCapacity(1)
		require.Len(t, found, 2)
		assert.Less(t, found[0].ID().String(), found[1].ID().String())
	})
}

func TestCatalogConcurrentCreateAndRead(t *testing.T) {
	catalog := memstore.NewCatalog()

	rooms := make([]*resource.Resource, 50)
	for i := range rooms {
		rooms[i] = newRoom(t, 4)
	}

	var wg sync.WaitGroup
	for _, r := range rooms {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = catalog.Create(r)
		}()
		go func() {
			defer wg.Done()
			_ = catalog.FindByCapacity(1)
		}()
	}
	wg.Wait()

	assert.Len(t, catalog.FindByCapacity(1), 50)
}
