package prand

import (
	"golang.org/x/xerrors"
)

// scaleEpsilon pads the min-max denominator so a near-degenerate sequence
// never divides by an exact zero; the maximum element therefore scales to
// slightly less than 1.
const scaleEpsilon = 1e-6

// boundedInt maps one draw onto [low, high] with the plain modulo mapping.
// The mapping is not uniform when the span does not divide the generator
// period; that bias is part of the contract.
func boundedInt(next func() uint64, low, high int64) (int64, error) {
	if low > high {
		return 0, xerrors.Errorf("RandInt low %d > high %d: %w", low, high, ErrInvalidRange)
	}

	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		// [low, high] covers the whole int64 range
		return low + int64(next()), nil
	}
	return low + int64(next()%span), nil
}

// rawSequence draws n successive values from one continuous stream
func rawSequence(next func() uint64, n int) ([]uint64, error) {
	if n <= 0 {
		return nil, xerrors.Errorf("Sequence count %d: %w", n, ErrInvalidCount)
	}

	seq := make([]uint64, n)
	for i := range seq {
		seq[i] = next()
	}
	return seq, nil
}

// minMaxScale maps seq onto [0, 1) element-wise, (x-lo)/(hi-lo+epsilon).
// An all-equal sequence maps to all zeros.
func minMaxScale(seq []uint64) []float64 {
	lo, hi := seq[0], seq[0]
	for _, x := range seq[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	out := make([]float64, len(seq))
	if hi == lo {
		return out
	}

	span := float64(hi-lo) + scaleEpsilon
	for i, x := range seq {
		out[i] = float64(x-lo) / span
	}
	return out
}
