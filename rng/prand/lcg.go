package prand

import (
	"math/bits"

	"golang.org/x/xerrors"
)

// Default LCG parameters, the Numerical Recipes constants
const (
	DefaultMultiplier uint64 = 1664525
	DefaultIncrement  uint64 = 1013904223
	DefaultModulus    uint64 = 1 << 32
)

// LCG is a linear congruential generator advancing as
// state = (a*state + c) mod m
type LCG struct {
	state uint64 // always in [0, m-1]
	a     uint64
	c     uint64
	m     uint64
}

// LCGOption sets one of the LCG tuning parameters
type LCGOption func(*LCG)

// MultiplierOption overrides the default multiplier a
func MultiplierOption(a uint64) LCGOption {
	return func(g *LCG) {
		g.a = a
	}
}

// IncrementOption overrides the default increment c
func IncrementOption(c uint64) LCGOption {
	return func(g *LCG) {
		g.c = c
	}
}

// ModulusOption overrides the default modulus m
func ModulusOption(m uint64) LCGOption {
	return func(g *LCG) {
		g.m = m
	}
}

// NewLCG creates a new LCG seeded with the given non-zero seed
func NewLCG(seed uint64, opts ...LCGOption) (*LCG, error) {
	if seed == 0 {
		return nil, xerrors.Errorf("NewLCG: %w", ErrInvalidSeed)
	}

	g := &LCG{
		a: DefaultMultiplier,
		c: DefaultIncrement,
		m: DefaultModulus,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = seed % g.m

	return g, nil
}

// Next generates the next random integer in [0, m-1].
// The multiply-add runs in a 128-bit intermediate so a*state never
// truncates before the modulus is applied.
func (g *LCG) Next() uint64 {
	hi, lo := bits.Mul64(g.a%g.m, g.state)
	lo, carry := bits.Add64(lo, g.c%g.m, 0)
	hi += carry
	_, g.state = bits.Div64(hi, lo, g.m)
	return g.state
}

// Random generates a random float in [0, 1)
func (g *LCG) Random() float64 {
	return float64(g.Next()) / float64(g.m)
}

// RandInt generates a random integer in [low, high]
func (g *LCG) RandInt(low, high int64) (int64, error) {
	return boundedInt(g.Next, low, high)
}

// Sequence generates n successive raw Next values
func (g *LCG) Sequence(n int) ([]uint64, error) {
	return rawSequence(g.Next, n)
}

// NormalizedSequence generates n successive Next values scaled with
// min-max normalization
func (g *LCG) NormalizedSequence(n int) ([]float64, error) {
	seq, err := rawSequence(g.Next, n)
	if err != nil {
		return nil, err
	}
	return minMaxScale(seq), nil
}
