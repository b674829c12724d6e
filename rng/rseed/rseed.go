// Package rseed derives deterministic generator seeds from arbitrary
// entropy bytes.
package rseed

import (
	"encoding/binary"

	"github.com/minio/blake2b-simd"
	"golang.org/x/xerrors"
)

// DomainTag separates seed draws made for different purposes so equal
// entropy never yields equal seeds across domains
type DomainTag int64

// Constants defining the seed derivation domains
const (
	DomainTagGenerator DomainTag = 1
	DomainTagSequence  DomainTag = 2
)

// Draw derives 32 bytes of seed material using blake2b over the domain tag
// and the entropy
func Draw(tag DomainTag, entropy []byte) ([32]byte, error) {
	var out [32]byte

	h := blake2b.New256()
	if err := binary.Write(h, binary.BigEndian, int64(tag)); err != nil {
		return out, xerrors.Errorf("Draw writing tag: %w", err)
	}
	if _, err := h.Write(entropy); err != nil {
		return out, xerrors.Errorf("Draw hashing entropy: %w", err)
	}

	copy(out[:], h.Sum(nil))
	return out, nil
}

// Uint64 derives an integer seed from the entropy. The result is never
// zero, so it is always accepted by the generator constructors.
func Uint64(tag DomainTag, entropy []byte) (uint64, error) {
	sum, err := Draw(tag, entropy)
	if err != nil {
		return 0, xerrors.Errorf("Uint64 draw failed: %w", err)
	}

	v := binary.BigEndian.Uint64(sum[:8])
	if v == 0 {
		v = 1
	}
	return v, nil
}
