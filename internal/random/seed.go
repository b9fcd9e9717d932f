// Package random provides seed generation for the deterministic dice system.
//
// Seeds are drawn from crypto/rand so that production play is unpredictable,
// while every sampling function in the engine stays replayable from the seed
// it was handed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// SeedFunc produces a seed for a single resolution. Services hold one of
// these so tests can pin seeds while production uses NewSeed.
type SeedFunc func() (int64, error)

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// FixedSeed returns a SeedFunc that always yields the provided seed.
func FixedSeed(seed int64) SeedFunc {
	return func() (int64, error) { return seed, nil }
}
