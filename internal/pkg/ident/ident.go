// Package ident provides the identifier generator used for resource and
// reservation ids. Generated values are unique under concurrent calls.
package ident

import "github.com/google/uuid"

type Generator interface {
	NewID() uuid.UUID
}

type uuidGenerator struct{}

func NewUUIDGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() uuid.UUID {
	return uuid.New()
}
