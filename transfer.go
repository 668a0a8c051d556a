package billing

import "fmt"

// Transfer moves amount coins from src to dst. The oldest coins currently held
// by src are reassigned. Balances and provenance change together or not at all.
func (l *Ledger) Transfer(src, dst string, amount int64) (Receipt, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	from, ok := l.participants.get(src)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %s", ErrUnknownParticipant, src)
	}
	to, ok := l.participants.get(dst)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %s", ErrUnknownParticipant, dst)
	}
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if from.name == to.name {
		return Receipt{}, fmt.Errorf("%w: %s", ErrSelfTransfer, src)
	}
	if from.balance < amount {
		return Receipt{}, fmt.Errorf("%w: %s holds %d, requested %d", ErrInsufficientBalance, src, from.balance, amount)
	}

	selected := l.heldBy(from.name, amount)
	if int64(len(selected)) != amount {
		return Receipt{}, fmt.Errorf("%w: %s has balance %d but holds %d coins", ErrTransferConsistency, src, from.balance, len(selected))
	}

	from.balance -= amount
	to.balance += amount
	for _, c := range selected {
		c.Provenance = append(c.Provenance, to.name)
	}

	receipt := newReceipt("transfer completed")
	l.tracer.Log(
		"op", "transfer",
		"src", src,
		"dst", dst,
		"amount", fmt.Sprint(amount),
		"first_coin", fmt.Sprint(selected[0].ID),
		"receipt", receipt.ID,
	)
	return receipt, nil
}

// heldBy returns up to limit coins whose current holder is name, oldest first.
func (l *Ledger) heldBy(name string, limit int64) []*Coin {
	selected := make([]*Coin, 0, limit)
	for _, c := range l.coins {
		if int64(len(selected)) == limit {
			break
		}
		if c.Holder() == name {
			selected = append(selected, c)
		}
	}
	return selected
}
