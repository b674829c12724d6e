package prand

import (
	"golang.org/x/xerrors"
)

// Default XORShift32 shift triple
const (
	DefaultShiftQ uint = 13
	DefaultShiftR uint = 17
	DefaultShiftS uint = 5
)

// XORShift32 is a xorshift generator over 32-bit state. The uint32 state
// type masks every left shift to 32 bits, which the algorithm depends on.
type XORShift32 struct {
	state uint32
	q     uint
	r     uint
	s     uint
}

// XORShiftOption sets the XORShift32 tuning parameters
type XORShiftOption func(*XORShift32)

// ShiftsOption overrides the default q/r/s shift triple
func ShiftsOption(q, r, s uint) XORShiftOption {
	return func(g *XORShift32) {
		g.q = q
		g.r = r
		g.s = s
	}
}

// NewXORShift creates a new XORShift32 seeded with the low 32 bits of the
// given non-zero seed
func NewXORShift(seed uint64, opts ...XORShiftOption) (*XORShift32, error) {
	if seed == 0 {
		return nil, xerrors.Errorf("NewXORShift: %w", ErrInvalidSeed)
	}

	g := &XORShift32{
		q: DefaultShiftQ,
		r: DefaultShiftR,
		s: DefaultShiftS,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = uint32(seed)

	return g, nil
}

// Next generates the next random 32-bit unsigned integer
func (g *XORShift32) Next() uint64 {
	x := g.state
	x ^= x << g.q
	x ^= x >> g.r
	x ^= x << g.s
	g.state = x
	return uint64(x)
}

// Random generates a random float in [0, 1)
func (g *XORShift32) Random() float64 {
	return float64(g.Next()) / (1 << 32)
}

// RandInt generates a random integer in [low, high]
func (g *XORShift32) RandInt(low, high int64) (int64, error) {
	return boundedInt(g.Next, low, high)
}

// Sequence generates n successive raw Next values
func (g *XORShift32) Sequence(n int) ([]uint64, error) {
	return rawSequence(g.Next, n)
}

// NormalizedSequence generates n successive Next values scaled with
// min-max normalization
func (g *XORShift32) NormalizedSequence(n int) ([]float64, error) {
	seq, err := rawSequence(g.Next, n)
	if err != nil {
		return nil, err
	}
	return minMaxScale(seq), nil
}
