package prand

import (
	"testing"

	"golang.org/x/xerrors"
)

func TestXORShiftFirstDraw(t *testing.T) {
	g, err := NewXORShift(123456)
	if err != nil {
		t.Fatal(err)
	}

	// 123456 through x^=x<<13, x^=x>>17, x^=x<<5, each masked to 32 bits
	if got := g.Next(); got != 3044438244 {
		t.Errorf("first draw = %d, want 3044438244", got)
	}
	if got := g.Next(); got != 372467569 {
		t.Errorf("second draw = %d, want 372467569", got)
	}
}

func TestXORShiftDeterminism(t *testing.T) {
	g1, err := NewXORShift(2463534242)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := NewXORShift(2463534242)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		v1, v2 := g1.Next(), g2.Next()
		if v1 != v2 {
			t.Fatalf("draw %d diverged: %d != %d", i, v1, v2)
		}
	}
}

func TestXORShiftSeedMasked(t *testing.T) {
	// seeds equal modulo 2^32 give the same stream
	g1, err := NewXORShift(123456)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := NewXORShift(123456 + (1 << 32))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		if g1.Next() != g2.Next() {
			t.Fatal("seeds equal mod 2^32 diverged")
		}
	}
}

func TestXORShiftRange(t *testing.T) {
	g, err := NewXORShift(123456)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		if v := g.Next(); v >= 1<<32 {
			t.Fatalf("draw %d = %d, want < 2^32", i, v)
		}
		if f := g.Random(); f < 0 || f >= 1 {
			t.Fatalf("Random() = %v, want [0, 1)", f)
		}
	}
}

func TestXORShiftShiftsOption(t *testing.T) {
	g, err := NewXORShift(123456, ShiftsOption(7, 9, 8))
	if err != nil {
		t.Fatal(err)
	}

	if got := g.Next(); got != 4031421217 {
		t.Errorf("first draw = %d, want 4031421217", got)
	}
	if got := g.Next(); got != 3102059556 {
		t.Errorf("second draw = %d, want 3102059556", got)
	}
}

func TestXORShiftZeroSeed(t *testing.T) {
	_, err := NewXORShift(0)
	if err == nil {
		t.Fatal("expected error for zero seed")
	}
	if !xerrors.Is(err, ErrInvalidSeed) {
		t.Errorf("error = %v, want ErrInvalidSeed", err)
	}
}

func TestXORShiftRandInt(t *testing.T) {
	g, err := NewXORShift(123456)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		v, err := g.RandInt(-3, 7)
		if err != nil {
			t.Fatal(err)
		}
		if v < -3 || v > 7 {
			t.Fatalf("RandInt(-3, 7) = %d", v)
		}
	}

	if _, err := g.RandInt(1, 0); !xerrors.Is(err, ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}
