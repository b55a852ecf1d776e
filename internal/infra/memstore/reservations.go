package memstore

import (
	"sync"
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/infra"

	"github.com/google/uuid"
)

// ReservationStore keeps active reservations indexed by id, by resource and
// by occupant. The resource and occupant indexes are updated in the same
// critical section as the primary map so they never drift.
type ReservationStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*reservation.Reservation
	byResource map[uuid.UUID]map[uuid.UUID]struct{} // active reservations per resource
	byOccupant map[string]map[uuid.UUID]struct{}    // active reservations per occupant
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		byID:       make(map[uuid.UUID]*reservation.Reservation),
		byResource: make(map[uuid.UUID]map[uuid.UUID]struct{}),
		byOccupant: make(map[string]map[uuid.UUID]struct{}),
	}
}

// Save inserts a new active reservation. The one-active-reservation-per
// occupant-per-window rule is enforced here, under the same write lock as
// the index update, so concurrent saves on different resources still
// serialize against each other.
func (s *ReservationStore) Save(r *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[r.ID()]; exists {
		return infra.NewStoreErr(infra.KindDuplicateKey, "reservation already saved: "+r.ID().String(), nil)
	}
	var held []*reservation.Reservation
	for id := range s.byOccupant[r.Occupant()] {
		held = append(held, s.byID[id])
	}
	if reservation.HasOverlap(held, r.Window()) {
		return infra.NewStoreErr(infra.KindConflict, "occupant holds an overlapping reservation: "+r.Occupant(), nil)
	}
	cp := r.Clone()
	s.byID[cp.ID()] = cp
	s.index(cp)
	return nil
}

// Remove deletes a reservation wholesale (interval resources on release).
func (s *ReservationStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return infra.NewStoreErr(infra.KindNotFound, "reservation not found: "+id.String(), nil)
	}
	s.unindex(r)
	delete(s.byID, id)
	return nil
}

// MarkReleased stamps the reservation and drops it from the active indexes
// while retaining the record (exclusive resources keep release history).
func (s *ReservationStore) MarkReleased(id uuid.UUID, released *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return infra.NewStoreErr(infra.KindNotFound, "reservation not found: "+id.String(), nil)
	}
	s.unindex(r)
	s.byID[id] = released.Clone()
	return nil
}

func (s *ReservationStore) FindByID(id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "reservation not found: "+id.String(), nil)
	}
	return r.Clone(), nil
}

// FindActiveByOccupant returns the occupant's active reservations.
func (s *ReservationStore) FindActiveByOccupant(occupant string) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*reservation.Reservation
	for id := range s.byOccupant[occupant] {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// FindByResourceOverlapping returns active reservations on the resource
// whose window overlaps w.
func (s *ReservationStore) FindByResourceOverlapping(resourceID uuid.UUID, w reservation.Window) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*reservation.Reservation
	for id := range s.byResource[resourceID] {
		r := s.byID[id]
		if r.Window().Overlaps(w) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// FindByResourceOnDay returns active reservations on the resource that
// touch any part of the day starting at dayStart.
func (s *ReservationStore) FindByResourceOnDay(resourceID uuid.UUID, dayStart time.Time) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*reservation.Reservation
	for id := range s.byResource[resourceID] {
		r := s.byID[id]
		if r.Window().ContainsDay(dayStart) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// HasActive is the indexed occupancy check for exclusive resources: does
// any active reservation exist for this resource id.
func (s *ReservationStore) HasActive(resourceID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byResource[resourceID]) > 0
}

func (s *ReservationStore) index(r *reservation.Reservation) {
	res := s.byResource[r.ResourceID()]
	if res == nil {
		res = make(map[uuid.UUID]struct{})
		s.byResource[r.ResourceID()] = res
	}
	res[r.ID()] = struct{}{}

	occ := s.byOccupant[r.Occupant()]
	if occ == nil {
		occ = make(map[uuid.UUID]struct{})
		s.byOccupant[r.Occupant()] = occ
	}
	occ[r.ID()] = struct{}{}
}

func (s *ReservationStore) unindex(r *reservation.Reservation) {
	delete(s.byResource[r.ResourceID()], r.ID())
	if len(s.byResource[r.ResourceID()]) == 0 {
		delete(s.byResource, r.ResourceID())
	}
	delete(s.byOccupant[r.Occupant()], r.ID())
	if len(s.byOccupant[r.Occupant()]) == 0 {
		delete(s.byOccupant, r.Occupant())
	}
}
