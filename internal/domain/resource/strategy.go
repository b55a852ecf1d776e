package resource

import "sort"

// Constraint narrows the candidate set before strategy selection. Exactly
// one of MinCapacity or Vehicle is meaningful, matching the resource kind.
type Constraint struct {
	MinCapacity int
	Vehicle     VehicleType
}

// Strategy picks one resource out of a candidate set. Implementations must
// be deterministic for a given candidate set so selection is testable.
type Strategy interface {
	Select(candidates []*Resource, c Constraint) (*Resource, bool)
}

// SmallestFit returns the qualifying resource with the lowest capacity,
// ties broken by id ascending.
type SmallestFit struct{}

func NewSmallestFit() Strategy {
	return SmallestFit{}
}

func (SmallestFit) Select(candidates []*Resource, c Constraint) (*Resource, bool) {
	var best *Resource
	for _, r := range candidates {
		if r.Capacity() < c.MinCapacity {
			continue
		}
		if best == nil ||
			r.Capacity() < best.Capacity() ||
			(r.Capacity() == best.Capacity() && r.ID().String() < best.ID().String()) {
			best = r
		}
	}
	return best, best != nil
}

// FirstFit returns the first candidate, in id order, whose spot type is
// compatible with the requested vehicle.
type FirstFit struct{}

func NewFirstFit() Strategy {
	return FirstFit{}
}

func (FirstFit) Select(candidates []*Resource, c Constraint) (*Resource, bool) {
	ordered := make([]*Resource, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID().String() < ordered[j].ID().String()
	})
	for _, r := range ordered {
		if Fits(c.Vehicle, r.SpotType()) {
			return r, true
		}
	}
	return nil, false
}
