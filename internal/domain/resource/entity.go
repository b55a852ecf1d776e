package resource

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("resource name cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidKind     = errors.New("invalid resource kind")
	ErrInvalidSpotType = errors.New("invalid spot type")
)

// Kind distinguishes how a resource is occupied. Interval resources hold
// scheduled, non-overlapping windows; exclusive resources hold at most one
// open-ended reservation at a time.
type Kind string

const (
	KindInterval  Kind = "interval"
	KindExclusive Kind = "exclusive"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindInterval, KindExclusive:
		return true
	default:
		return false
	}
}

type SpotType string

const (
	SpotMotorcycle SpotType = "motorcycle"
	SpotCompact    SpotType = "compact"
	SpotLarge      SpotType = "large"
)

func (s SpotType) IsValid() bool {
	switch s {
	case SpotMotorcycle, SpotCompact, SpotLarge:
		return true
	default:
		return false
	}
}

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleTruck      VehicleType = "truck"
)

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleMotorcycle, VehicleCar, VehicleTruck:
		return true
	default:
		return false
	}
}

// Fits reports whether a vehicle may occupy a spot of the given type.
// Motorcycles fit any spot, cars need compact or large, trucks large only.
func Fits(v VehicleType, s SpotType) bool {
	switch v {
	case VehicleMotorcycle:
		return true
	case VehicleCar:
		return s == SpotCompact || s == SpotLarge
	case VehicleTruck:
		return s == SpotLarge
	default:
		return false
	}
}

// Resource is an allocatable unit. Immutable once created; never deleted.
type Resource struct {
	id       uuid.UUID
	name     string
	kind     Kind
	capacity int
	spotType SpotType
}

func NewIntervalResource(id uuid.UUID, name string, capacity int) (*Resource, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Resource{
		id:       id,
		name:     name,
		kind:     KindInterval,
		capacity: capacity,
	}, nil
}

func NewExclusiveResource(id uuid.UUID, name string, spotType SpotType) (*Resource, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if !spotType.IsValid() {
		return nil, ErrInvalidSpotType
	}
	return &Resource{
		id:       id,
		name:     name,
		kind:     KindExclusive,
		spotType: spotType,
	}, nil
}

func (r *Resource) ID() uuid.UUID      { return r.id }
func (r *Resource) Name() string       { return r.name }
func (r *Resource) Kind() Kind         { return r.kind }
func (r *Resource) Capacity() int      { return r.capacity }
func (r *Resource) SpotType() SpotType { return r.spotType }

func (r *Resource) IsExclusive() bool {
	return r.kind == KindExclusive
}
