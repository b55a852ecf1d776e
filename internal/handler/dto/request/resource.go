package request

import (
	"resbook/internal/domain/resource"
	"resbook/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind" binding:"required,resourcekind"`
	Capacity int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	SpotType string `json:"spot_type,omitempty" binding:"omitempty,spottype"`
}

func (r CreateResourceRequest) ToParams() commands.CreateResourceParams {
	return commands.CreateResourceParams{
		Name:     r.Name,
		Kind:     resource.Kind(r.Kind),
		Capacity: r.Capacity,
		SpotType: resource.SpotType(r.SpotType),
	}
}
