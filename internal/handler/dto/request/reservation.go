package request

import (
	"strings"
	"time"

	"resbook/internal/domain/resource"
	"resbook/internal/usecase/commands"
	"resbook/internal/usecase/queries"
)

type AllocateRequest struct {
	Occupant    string     `json:"occupant" binding:"required"`
	MinCapacity int        `json:"min_capacity,omitempty" binding:"omitempty,min=1"`
	Vehicle     string     `json:"vehicle,omitempty" binding:"omitempty,vehicletype"`
	Start       time.Time  `json:"start" binding:"required"`
	End         *time.Time `json:"end,omitempty"`
}

func (r AllocateRequest) ToParams() commands.AllocateParams {
	return commands.AllocateParams{
		Occupant:    strings.TrimSpace(r.Occupant),
		MinCapacity: r.MinCapacity,
		Vehicle:     resource.VehicleType(r.Vehicle),
		Start:       r.Start,
		End:         r.End,
	}
}

type FindAvailableQuery struct {
	MinCapacity int        `form:"min_capacity" binding:"omitempty,min=1"`
	Vehicle     string     `form:"vehicle" binding:"omitempty,vehicletype"`
	Start       time.Time  `form:"start" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	End         *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r FindAvailableQuery) ToParams() queries.AvailabilityParams {
	return queries.AvailabilityParams{
		MinCapacity: r.MinCapacity,
		Vehicle:     resource.VehicleType(r.Vehicle),
		Start:       r.Start,
		End:         r.End,
	}
}
