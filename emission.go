package billing

import (
	"fmt"
	"math"
)

// allocate splits amount into one share per weight, in weight order.
//
// Every share holds at least one coin. The surplus above that floor is spread
// by weight: each share except the last gets its percentage of the total weight
// applied to the surplus, rounded half to even. The last share takes whatever
// is left, so the shares always add up to amount no matter how much the
// rounding drifted. A proportional share never exceeds the surplus still
// unassigned, which keeps the last share at one coin or more.
func allocate(amount int64, weights []int64) ([]int64, error) {
	n := int64(len(weights))
	if n == 0 || amount < n {
		return nil, fmt.Errorf("%w: requested %d coins for %d participants", ErrInsufficientAmount, amount, n)
	}

	total := int64(0)
	for _, w := range weights {
		total += w
	}

	surplus := amount - n
	left := surplus
	minted := int64(0)
	shares := make([]int64, n)

	last := n - 1
	for i := int64(0); i < last; i++ {
		extra := int64(math.RoundToEven(float64(weights[i]) / (float64(total) / 100) * (float64(surplus) / 100)))
		if extra > left {
			extra = left
		}
		left -= extra

		shares[i] = 1 + extra
		minted += shares[i]
	}
	shares[last] = amount - minted

	return shares, nil
}

// Emit mints exactly amount coins across all participants in seed order.
func (l *Ledger) Emit(amount int64) (Receipt, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	weights := make([]int64, 0, l.participants.len())
	for _, p := range l.participants.order {
		weights = append(weights, p.weight)
	}

	shares, err := allocate(amount, weights)
	if err != nil {
		return Receipt{}, err
	}

	for i, p := range l.participants.order {
		l.mint(p, shares[i])
	}

	receipt := newReceipt("emission completed")
	l.tracer.Log(
		"op", "emit",
		"amount", fmt.Sprint(amount),
		"last_coin", fmt.Sprint(l.lastID),
		"receipt", receipt.ID,
	)
	return receipt, nil
}

func (l *Ledger) mint(p *participant, count int64) {
	for i := int64(0); i < count; i++ {
		l.lastID++
		l.coins = append(l.coins, &Coin{
			ID:         l.lastID,
			Provenance: []string{p.name},
		})
	}
	p.balance += count
}
