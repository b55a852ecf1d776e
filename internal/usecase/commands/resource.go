package commands

import (
	"context"

	"resbook/internal/domain/resource"
	"resbook/internal/infra"
	"resbook/internal/pkg/errs"
	"resbook/internal/pkg/ident"

	"github.com/google/uuid"
)

var (
	ErrDuplicateResource = errs.New("resource already exists")
	ErrInvalidResource   = errs.New("invalid resource definition")
)

type CreateResourceParams struct {
	Name     string
	Kind     resource.Kind
	Capacity int
	SpotType resource.SpotType
}

type ResourceCommands interface {
	CreateResource(ctx context.Context, p CreateResourceParams) (uuid.UUID, error)
}

type resourceCommandsImpl struct {
	catalog Catalog
	locks   LockRegistry
	ident   ident.Generator
}

func NewResourceCommands(catalog Catalog, locks LockRegistry, gen ident.Generator) ResourceCommands {
	return &resourceCommandsImpl{
		catalog: catalog,
		locks:   locks,
		ident:   gen,
	}
}

// CreateResource registers the resource and preallocates its lock. The lock
// is registered before the resource becomes discoverable through the
// catalog, so no allocation can observe a resource without a lock.
func (c *resourceCommandsImpl) CreateResource(_ context.Context, p CreateResourceParams) (uuid.UUID, error) {
	id := c.ident.NewID()

	var (
		res *resource.Resource
		err error
	)
	switch p.Kind {
	case resource.KindInterval:
		res, err = resource.NewIntervalResource(id, p.Name, p.Capacity)
	case resource.KindExclusive:
		res, err = resource.NewExclusiveResource(id, p.Name, p.SpotType)
	default:
		return uuid.Nil, errs.Mark(resource.ErrInvalidKind, ErrInvalidResource)
	}
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidResource)
	}

	c.locks.Register(id)
	if err := c.catalog.Create(res); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateResource
		}
		return uuid.Nil, errs.Wrap(err, "register resource")
	}
	return id, nil
}
