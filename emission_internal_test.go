package billing

import (
	"errors"
	"reflect"
	"testing"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		amount   int64
		weights  []int64
		expected []int64
	}{
		{amount: 100, weights: []int64{5000, 1000, 800}, expected: []int64{72, 15, 13}},
		{amount: 3, weights: []int64{5000, 1000, 800}, expected: []int64{1, 1, 1}},
		{amount: 7, weights: []int64{42}, expected: []int64{7}},
		// 0.5 rounds down to even
		{amount: 3, weights: []int64{1, 1}, expected: []int64{1, 2}},
		// 1.5 rounds up to even
		{amount: 5, weights: []int64{1, 1}, expected: []int64{3, 2}},
		// rounding would overdraw the surplus, the third share is clamped
		{amount: 6, weights: []int64{10, 10, 10, 1}, expected: []int64{2, 2, 1, 1}},
	}

	for i, test := range tests {
		shares, err := allocate(test.amount, test.weights)
		if err != nil {
			t.Fatalf("test[%d] failed - unexpected err: %s", i, err)
		}
		if !reflect.DeepEqual(shares, test.expected) {
			t.Fatalf("test[%d] failed - expected shares are %v, but got %v", i, test.expected, shares)
		}
	}
}

func TestAllocate_insufficientAmount(t *testing.T) {
	for _, amount := range []int64{-1, 0, 1, 2} {
		shares, err := allocate(amount, []int64{5000, 1000, 800})
		if !errors.Is(err, ErrInsufficientAmount) {
			t.Fatalf("expected ErrInsufficientAmount for %d, but got %v", amount, err)
		}
		if shares != nil {
			t.Fatalf("expected no shares, but got %v", shares)
		}
	}

	if _, err := allocate(10, nil); !errors.Is(err, ErrInsufficientAmount) {
		t.Fatalf("expected ErrInsufficientAmount without weights, but got %v", err)
	}
}

func TestAllocate_totalAndFloor(t *testing.T) {
	weightSets := [][]int64{
		{5000, 1000, 800},
		{1, 1, 1, 1, 1, 1, 1},
		{10, 10, 10, 1},
		{1, 99999},
		{99999, 1},
		{3, 7, 11, 13, 17, 19, 23},
	}

	for _, weights := range weightSets {
		for amount := int64(len(weights)); amount < 1000; amount++ {
			shares, err := allocate(amount, weights)
			if err != nil {
				t.Fatalf("weights %v, amount %d: unexpected err: %s", weights, amount, err)
			}

			sum := int64(0)
			for i, share := range shares {
				if share < 1 {
					t.Fatalf("weights %v, amount %d: share[%d] is %d", weights, amount, i, share)
				}
				sum += share
			}
			if sum != amount {
				t.Fatalf("weights %v: expected total is %d, but got %d", weights, amount, sum)
			}
		}
	}
}

func TestLedger_mint(t *testing.T) {
	l, err := New(defaultSeed())
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	boris, _ := l.participants.get("boris")
	l.mint(boris, 3)
	l.mint(boris, 0)

	if boris.balance != 3 {
		t.Fatalf("expected balance is %d, but got %d", 3, boris.balance)
	}
	if len(l.coins) != 3 || l.lastID != 3 {
		t.Fatalf("expected 3 coins, but got %d (last id %d)", len(l.coins), l.lastID)
	}
	for i, c := range l.coins {
		if c.ID != int64(i+1) {
			t.Fatalf("expected coin id is %d, but got %d", i+1, c.ID)
		}
		if !reflect.DeepEqual(c.Provenance, []string{"boris"}) {
			t.Fatalf("expected provenance is [boris], but got %v", c.Provenance)
		}
	}
}
