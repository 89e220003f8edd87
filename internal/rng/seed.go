package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// NewSeed generates a run seed using crypto/rand.
// Used when a run is started without an explicit seed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	// Keep seeds non-negative so they print and round-trip cleanly.
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}

// SeedFromPhrase derives a run seed from a human-readable phrase.
// Case and surrounding whitespace are ignored, so "Ember Run" and " ember run"
// share a seed.
func SeedFromPhrase(phrase string) int64 {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(phrase))))
	return int64(binary.LittleEndian.Uint64(sum[:8]) >> 1)
}
