package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/domain/resource"
	"resbook/internal/infra"
	"resbook/internal/pkg/clock"
	"resbook/internal/pkg/errs"
	"resbook/internal/pkg/ident"

	"github.com/google/uuid"
)

var (
	ErrInvalidOccupant   = errs.New("occupant reference cannot be empty")
	ErrInvalidWindow     = errs.New("invalid reservation window")
	ErrInvalidConstraint = errs.New("exactly one of capacity or vehicle must be set")
	ErrNoCapacity        = errs.New("no resource satisfies the constraints")
	ErrConflict          = errs.New("resource unavailable for the requested window")
)

// errCandidateTaken signals inside the allocation loop that the locked
// exclusive candidate is already occupied; the scan drops it and moves on.
var errCandidateTaken = errs.New("candidate already occupied")

// AllocateParams carries one allocation request. MinCapacity selects
// interval resources and requires an end; Vehicle selects exclusive
// resources and may leave End nil for an open-ended stay.
type AllocateParams struct {
	Occupant    string
	MinCapacity int
	Vehicle     resource.VehicleType
	Start       time.Time
	End         *time.Time
}

type ReservationCommands interface {
	Allocate(ctx context.Context, p AllocateParams) (*reservation.Reservation, error)
	Release(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseByOccupant(ctx context.Context, occupant string) (bool, error)
}

type reservationCommandsImpl struct {
	catalog       Catalog
	store         ReservationStore
	locks         LockRegistry
	notifier      Notifier
	ident         ident.Generator
	clock         clock.Clock
	intervalPick  resource.Strategy
	exclusivePick resource.Strategy
}

// Strategies bundles the selection policy per resource kind. Swapping a
// policy never touches the allocation path itself.
type Strategies struct {
	Interval  resource.Strategy
	Exclusive resource.Strategy
}

func NewDefaultStrategies() Strategies {
	return Strategies{
		Interval:  resource.NewSmallestFit(),
		Exclusive: resource.NewFirstFit(),
	}
}

func NewReservationCommands(
	catalog Catalog,
	store ReservationStore,
	locks LockRegistry,
	notifier Notifier,
	gen ident.Generator,
	clk clock.Clock,
	picks Strategies,
) ReservationCommands {
	return &reservationCommandsImpl{
		catalog:       catalog,
		store:         store,
		locks:         locks,
		notifier:      notifier,
		ident:         gen,
		clock:         clk,
		intervalPick:  picks.Interval,
		exclusivePick: picks.Exclusive,
	}
}

// Allocate runs the full path: candidate discovery, strategy pick, per
// resource try-lock, in-lock re-validation, commit. Discovery and the pick
// are advisory; the lock section re-checks everything, so a stale pick can
// only cost a Conflict, never a double booking. A busy lock or an already
// occupied exclusive candidate drops that candidate and re-picks among the
// rest; running out of candidates is NoCapacity. A lost interval window
// race or an occupant already holding an overlapping reservation is
// Conflict, with no retry.
func (c *reservationCommandsImpl) Allocate(ctx context.Context, p AllocateParams) (*reservation.Reservation, error) {
	window, strategy, candidates, constraint, err := c.prepare(p)
	if err != nil {
		return nil, err
	}

	for len(candidates) > 0 {
		pick, ok := strategy.Select(candidates, constraint)
		if !ok {
			return nil, ErrNoCapacity
		}

		var committed *reservation.Reservation
		ran, lockErr := c.locks.TryWithLock(pick.ID(), func() error {
			if err := c.checkAvailability(pick, window); err != nil {
				return err
			}
			r, err := reservation.NewReservation(c.ident.NewID(), pick.ID(), p.Occupant, window, c.clock.Now())
			if err != nil {
				// prepare already validated the inputs
				return errs.Wrap(err, "construct reservation")
			}
			if err := c.store.Save(r); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrConflict
				}
				return errs.Wrap(err, "persist reservation")
			}
			committed = r
			return nil
		})
		if lockErr != nil {
			if errs.Is(lockErr, errCandidateTaken) {
				candidates = drop(candidates, pick.ID())
				continue
			}
			return nil, lockErr
		}
		if !ran {
			candidates = drop(candidates, pick.ID())
			continue
		}

		c.notify(ctx, c.notifier.NotifyAllocated, committed)
		return committed, nil
	}
	return nil, ErrNoCapacity
}

// Release removes (interval) or end-stamps (exclusive) a reservation.
// Releasing an unknown or already released id is an idempotent false.
func (c *reservationCommandsImpl) Release(ctx context.Context, id uuid.UUID) (bool, error) {
	r, err := c.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Wrap(err, "look up reservation")
	}
	if !r.IsActive() {
		return false, nil
	}

	res, err := c.catalog.FindByID(r.ResourceID())
	if err != nil {
		// A stored reservation always references a cataloged resource.
		return false, errs.Wrap(err, "reservation references unknown resource")
	}

	var released *reservation.Reservation
	lockErr := c.locks.WithLock(r.ResourceID(), func() error {
		cur, err := c.store.FindByID(id)
		if err != nil || !cur.IsActive() {
			return nil // lost the race to another release; stays idempotent
		}
		if res.IsExclusive() {
			if err := cur.Release(c.clock.Now()); err != nil {
				return nil
			}
			if err := c.store.MarkReleased(id, cur); err != nil {
				return errs.Wrap(err, "stamp reservation release")
			}
		} else {
			if err := c.store.Remove(id); err != nil {
				return errs.Wrap(err, "remove reservation")
			}
		}
		released = cur
		return nil
	})
	if lockErr != nil {
		return false, lockErr
	}
	if released == nil {
		return false, nil
	}

	c.notify(ctx, c.notifier.NotifyReleased, released)
	return true, nil
}

// ReleaseByOccupant releases the occupant's open-ended reservation, the
// leave-vehicle path for exclusive-occupancy resources.
func (c *reservationCommandsImpl) ReleaseByOccupant(ctx context.Context, occupant string) (bool, error) {
	for _, r := range c.store.FindActiveByOccupant(occupant) {
		if r.Window().IsOpen() {
			return c.Release(ctx, r.ID())
		}
	}
	return false, nil
}

func (c *reservationCommandsImpl) prepare(p AllocateParams) (reservation.Window, resource.Strategy, []*resource.Resource, resource.Constraint, error) {
	var zero reservation.Window

	if strings.TrimSpace(p.Occupant) == "" {
		return zero, nil, nil, resource.Constraint{}, ErrInvalidOccupant
	}

	hasCapacity := p.MinCapacity > 0
	hasVehicle := p.Vehicle != ""
	if hasCapacity == hasVehicle {
		return zero, nil, nil, resource.Constraint{}, ErrInvalidConstraint
	}

	if hasCapacity {
		if p.End == nil {
			return zero, nil, nil, resource.Constraint{}, ErrInvalidWindow
		}
		window, err := reservation.NewWindow(p.Start, *p.End)
		if err != nil {
			return zero, nil, nil, resource.Constraint{}, errs.Mark(err, ErrInvalidWindow)
		}
		constraint := resource.Constraint{MinCapacity: p.MinCapacity}
		return window, c.intervalPick, c.catalog.FindByCapacity(p.MinCapacity), constraint, nil
	}

	if !p.Vehicle.IsValid() {
		return zero, nil, nil, resource.Constraint{}, ErrInvalidConstraint
	}
	var window reservation.Window
	if p.End != nil {
		w, err := reservation.NewWindow(p.Start, *p.End)
		if err != nil {
			return zero, nil, nil, resource.Constraint{}, errs.Mark(err, ErrInvalidWindow)
		}
		window = w
	} else {
		window = reservation.NewOpenWindow(p.Start)
	}
	constraint := resource.Constraint{Vehicle: p.Vehicle}
	return window, c.exclusivePick, c.catalog.FindByVehicle(p.Vehicle), constraint, nil
}

// checkAvailability is the in-lock re-validation of the picked resource's
// occupancy via the indexed store lookups. An occupied exclusive resource
// means the pick went stale, not that the request must fail; an interval
// overlap on the requested window is a real conflict.
func (c *reservationCommandsImpl) checkAvailability(pick *resource.Resource, w reservation.Window) error {
	if pick.IsExclusive() {
		if c.store.HasActive(pick.ID()) {
			return errCandidateTaken
		}
		return nil
	}
	if len(c.store.FindByResourceOverlapping(pick.ID(), w)) > 0 {
		return ErrConflict
	}
	return nil
}

func (c *reservationCommandsImpl) notify(ctx context.Context, send func(context.Context, *reservation.Reservation) error, r *reservation.Reservation) {
	if err := send(ctx, r); err != nil {
		slog.Warn("notification dispatch failed",
			"reservation_id", r.ID(),
			"occupant", r.Occupant(),
			"error", err,
		)
	}
}

func drop(candidates []*resource.Resource, id uuid.UUID) []*resource.Resource {
	out := candidates[:0]
	for _, r := range candidates {
		if r.ID() != id {
			out = append(out, r)
		}
	}
	return out
}

// IsBusinessOutcome reports whether err is an expected allocation outcome
// rather than a defect. Callers branch on these; nothing here panics.
func IsBusinessOutcome(err error) bool {
	return errs.Is(err, ErrNoCapacity) || errs.Is(err, ErrConflict)
}
