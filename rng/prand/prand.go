// Package prand implements deterministic pseudo-random number generators
// behind a common Rng interface. Generators own their state exclusively and
// are not safe for concurrent use; callers sharing an instance across
// goroutines must serialize access themselves.
package prand

import (
	"golang.org/x/xerrors"
)

// RNGType represents the type of random number generator
type RNGType = string

// Constants defining the available generator variants
const (
	RNGTypeLCG      RNGType = "lcg"      // Linear congruential generator
	RNGTypeXORShift RNGType = "xorshift" // XORShift32 generator
	RNGTypeCipher   RNGType = "cipher"   // Slow, cipher-backed generator
)

// Errors reported when a call violates one of the generator preconditions
var (
	ErrInvalidSeed  = xerrors.New("seed must be non-zero")
	ErrInvalidRange = xerrors.New("low must be <= high")
	ErrInvalidCount = xerrors.New("count must be positive")
)

// Rng is the interface for a deterministic random number generator
type Rng interface {
	// Next advances the generator and returns the new state value
	Next() uint64
	// Random returns a float in [0, 1)
	Random() float64
	// RandInt returns an integer in [low, high] inclusive
	RandInt(low, high int64) (int64, error)
	// Sequence returns n successive raw Next values
	Sequence(n int) ([]uint64, error)
	// NormalizedSequence returns n successive Next values min-max scaled
	NormalizedSequence(n int) ([]float64, error)
}

// New creates a new random number generator based on the specified type and seed
func New(typ RNGType, seed uint64) (Rng, error) {
	switch typ {
	case RNGTypeCipher:
		return NewChaCha8(seed)
	case RNGTypeXORShift:
		return NewXORShift(seed)
	case RNGTypeLCG:
		fallthrough
	default:
		return NewLCG(seed)
	}
}
