// Package utils holds small shared helpers.
package utils

import "github.com/google/uuid"

// UUIDGenerator issues operation identifiers. UUIDv7 is preferred because
// the identifiers are time-ordered, which keeps them roughly aligned with
// the queue sequence and makes logs easy to scan.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
