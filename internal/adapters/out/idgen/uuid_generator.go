// Package idgen produces resource identifiers.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator returns random (version 4) UUIDs as 32 lowercase hex
// characters without dashes.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) Next() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
