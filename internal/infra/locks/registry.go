// Package locks serializes the check-then-write section per resource.
package locks

import (
	"sync"

	"resbook/internal/infra"

	"github.com/google/uuid"
)

// Registry holds one mutex per resource id. Entries are registered when the
// resource is created and never removed, so lookup never races with first
// use. A request only ever holds one resource lock at a time, which rules
// out cross-resource deadlock.
type Registry struct {
	mu    sync.RWMutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Register preallocates the lock for a resource. Registering the same id
// twice is a no-op so catalog creation stays the single dedup point.
func (r *Registry) Register(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.locks[id]; !exists {
		r.locks[id] = &sync.Mutex{}
	}
}

// WithLock runs fn while holding the resource's lock, releasing it on every
// exit path. An unregistered id is a programming defect on the caller side.
func (r *Registry) WithLock(id uuid.UUID, fn func() error) error {
	l, err := r.lookup(id)
	if err != nil {
		return err
	}
	l.Lock()
	defer l.Unlock()
	return fn()
}

// TryWithLock runs fn only if the lock is immediately available, so a busy
// resource never stalls candidate scanning. The bool reports whether fn ran.
func (r *Registry) TryWithLock(id uuid.UUID, fn func() error) (bool, error) {
	l, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	if !l.TryLock() {
		return false, nil
	}
	defer l.Unlock()
	return true, fn()
}

func (r *Registry) lookup(id uuid.UUID) (*sync.Mutex, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locks[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "no lock registered for resource: "+id.String(), nil)
	}
	return l, nil
}
