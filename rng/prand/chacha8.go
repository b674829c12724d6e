package prand

import (
	"encoding/binary"

	cc "github.com/nixberg/chacha-rng-go"
	"golang.org/x/xerrors"

	"github.com/muichi-mon/random-number-generator/rng/rseed"
)

// chacha8 represents a ChaCha8 random number generator
type chacha8 struct {
	s *cc.ChaCha
}

// NewChaCha8 creates a cipher-backed generator. The integer seed is
// expanded to the 256-bit cipher key through rseed, so equal seeds give
// equal streams like the other variants.
func NewChaCha8(seed uint64) (Rng, error) {
	if seed == 0 {
		return nil, xerrors.Errorf("NewChaCha8: %w", ErrInvalidSeed)
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	sum, err := rseed.Draw(rseed.DomainTagGenerator, buf[:])
	if err != nil {
		return nil, xerrors.Errorf("NewChaCha8 expanding seed: %w", err)
	}

	var seed32 [8]uint32
	for i := 0; i < 8; i++ {
		seed32[i] = binary.LittleEndian.Uint32(sum[i*4:])
	}

	return &chacha8{s: cc.Seeded8(seed32, 0)}, nil
}

// Next generates the next random uint64 using ChaCha8
func (c *chacha8) Next() uint64 {
	return c.s.Uint64()
}

// Random generates a random float in [0, 1) using ChaCha8
func (c *chacha8) Random() float64 {
	return c.s.Float64()
}

// RandInt generates a random integer in [low, high]
func (c *chacha8) RandInt(low, high int64) (int64, error) {
	return boundedInt(c.Next, low, high)
}

// Sequence generates n successive raw Next values
func (c *chacha8) Sequence(n int) ([]uint64, error) {
	return rawSequence(c.Next, n)
}

// NormalizedSequence generates n successive Next values scaled with
// min-max normalization
func (c *chacha8) NormalizedSequence(n int) ([]float64, error) {
	seq, err := rawSequence(c.Next, n)
	if err != nil {
		return nil, err
	}
	return minMaxScale(seq), nil
}
