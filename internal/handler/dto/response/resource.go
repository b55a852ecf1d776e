package response

import (
	"resbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateResourceResponse struct {
	ID uuid.UUID `json:"id"`
}

type ResourceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Capacity int       `json:"capacity,omitempty"`
	SpotType string    `json:"spotType,omitempty"`
}

func FromResourceView(view *queries.ResourceView) *ResourceResponse {
	var resp ResourceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromResourceViews(views []*queries.ResourceView) []*ResourceResponse {
	out := make([]*ResourceResponse, len(views))
	for i, v := range views {
		out[i] = FromResourceView(v)
	}
	return out
}
