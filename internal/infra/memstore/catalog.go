// Package memstore holds the in-memory catalog and reservation store.
// Reads take a shared lock and may run concurrently; writes are exclusive.
package memstore

import (
	"sort"
	"sync"

	"resbook/internal/domain/resource"
	"resbook/internal/infra"

	"github.com/google/uuid"
)

// Catalog holds resource definitions. Resources are immutable once created
// and never deleted, so returned pointers are safe to share.
type Catalog struct {
	mu        sync.RWMutex
	resources map[uuid.UUID]*resource.Resource
}

func NewCatalog() *Catalog {
	return &Catalog{
		resources: make(map[uuid.UUID]*resource.Resource),
	}
}

func (c *Catalog) Create(r *resource.Resource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.resources[r.ID()]; exists {
		return infra.NewStoreErr(infra.KindDuplicateKey, "resource already registered: "+r.ID().String(), nil)
	}
	c.resources[r.ID()] = r
	return nil
}

func (c *Catalog) FindByID(id uuid.UUID) (*resource.Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.resources[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "resource not found: "+id.String(), nil)
	}
	return r, nil
}

// FindByCapacity returns interval resources with capacity >= minCap, sorted
// by id so selection downstream is deterministic.
func (c *Catalog) FindByCapacity(minCap int) []*resource.Resource {
	return c.filter(func(r *resource.Resource) bool {
		return r.Kind() == resource.KindInterval && r.Capacity() >= minCap
	})
}

// FindByVehicle returns exclusive resources whose spot type can hold the
// given vehicle, sorted by id.
func (c *Catalog) FindByVehicle(v resource.VehicleType) []*resource.Resource {
	return c.filter(func(r *resource.Resource) bool {
		return r.Kind() == resource.KindExclusive && resource.Fits(v, r.SpotType())
	})
}

func (c *Catalog) filter(keep func(*resource.Resource) bool) []*resource.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*resource.Resource
	for _, r := range c.resources {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
