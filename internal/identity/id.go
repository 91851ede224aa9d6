// Package identity generates aggregate identifiers and URL slugs.
package identity

import "github.com/google/uuid"

// IDGenerator hands out opaque unique identifiers.
type IDGenerator interface {
	NextIdentity() string
}

// UUIDGenerator produces random (v4) UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUIDGenerator.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NextIdentity returns a new UUID string.
func (UUIDGenerator) NextIdentity() string {
	return uuid.New().String()
}
