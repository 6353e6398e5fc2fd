package utils

import "github.com/google/uuid"

// Generator produces unique string identifiers.
type Generator interface {
	Generate() string
}

// UUIDGenerator produces time-ordered identifiers with a fixed prefix,
// e.g. "blob:0190f1c4-...".
type UUIDGenerator struct {
	prefix string
}

func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns the prefix followed by a UUIDv7, or a random UUIDv4 if
// the time-based variant cannot be produced.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
