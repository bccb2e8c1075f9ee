package dungeon

import (
	"math"
	"testing"
)

func TestDepositDecaysWithDistance(t *testing.T) {
	m := NewCostMap(32, 1)
	m.Deposit(0, 0, 1)

	prev := math.Inf(1)
	for x := 0; x < 32; x++ {
		v := m.At(x, 0)
		if v <= 0 {
			t.Fatalf("expected positive cost everywhere, got %g at x=%d", v, x)
		}
		if v >= prev {
			t.Fatalf("expected strictly decreasing cost with distance, got %g after %g at x=%d", v, prev, x)
		}
		prev = v
	}

	if peak := m.At(0, 0); peak != m.Max() {
		t.Fatalf("expected maximum at the deposit center, center=%g max=%g", peak, m.Max())
	}
}

func TestDepositSquaresWeight(t *testing.T) {
	a := NewCostMap(8, 8)
	b := NewCostMap(8, 8)
	a.Deposit(3, 3, 1)
	b.Deposit(3, 3, 2)

	for i, v := range a.Cells() {
		got := b.Cells()[i]
		if math.Abs(got-4*v) > 1e-12 {
			t.Fatalf("expected weight 2 to deposit 4x weight 1 at %d, got %g want %g", i, got, 4*v)
		}
	}
}

func TestDepositMonotonicNonDecreasing(t *testing.T) {
	m := NewCostMap(16, 12)
	m.Deposit(2, 2, 1.5)

	before := append([]float64(nil), m.Cells()...)
	m.Deposit(13, 9, 0.75)

	for i, v := range m.Cells() {
		if v < before[i] {
			t.Fatalf("cost decreased at %d: %g -> %g", i, before[i], v)
		}
		if v < 0 {
			t.Fatalf("negative cost at %d: %g", i, v)
		}
	}
}

func TestDepositZeroWeightIsNoop(t *testing.T) {
	m := NewCostMap(8, 8)
	m.Deposit(4, 4, 0)
	for i, v := range m.Cells() {
		if v != 0 {
			t.Fatalf("expected zero-weight deposit to leave cell %d untouched, got %g", i, v)
		}
	}
}

func TestAtOutOfRangeReadsZero(t *testing.T) {
	m := NewCostMap(4, 4)
	m.Deposit(0, 0, 3)
	if v := m.At(-1, 0); v != 0 {
		t.Fatalf("expected out-of-range read to be zero, got %g", v)
	}
	if v := m.At(0, 4); v != 0 {
		t.Fatalf("expected out-of-range read to be zero, got %g", v)
	}
}
