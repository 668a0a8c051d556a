package billing

import (
	"errors"
	"reflect"
	"testing"
)

func TestTransfer_consistencyFailure(t *testing.T) {
	l, err := New(defaultSeed())
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if _, err := l.Emit(100); err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	// boris holds 72 coins, drift the recorded balance above that
	boris, _ := l.participants.get("boris")
	boris.balance += 10

	before := snapshotCoins(l)
	_, err = l.Transfer("boris", "maria", 80)
	if !errors.Is(err, ErrTransferConsistency) {
		t.Fatalf("expected ErrTransferConsistency, but got %v", err)
	}

	maria, _ := l.participants.get("maria")
	if boris.balance != 82 || maria.balance != 15 {
		t.Fatalf("balances must be unchanged, got boris=%d maria=%d", boris.balance, maria.balance)
	}
	if !reflect.DeepEqual(before, snapshotCoins(l)) {
		t.Fatalf("provenance must be unchanged after failed transfer")
	}
}

func TestLedger_heldBy(t *testing.T) {
	l, err := New(defaultSeed())
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if _, err := l.Emit(100); err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	// maria's coins are minted after boris's 72
	coins := l.heldBy("maria", 3)
	if len(coins) != 3 {
		t.Fatalf("expected %d coins, but got %d", 3, len(coins))
	}
	for i, c := range coins {
		if c.ID != int64(73+i) {
			t.Fatalf("expected coin id is %d, but got %d", 73+i, c.ID)
		}
	}

	if len(l.heldBy("oleg", 1000)) != 13 {
		t.Fatalf("expected oleg to hold %d coins, but got %d", 13, len(l.heldBy("oleg", 1000)))
	}
	if len(l.heldBy("ghost", 10)) != 0 {
		t.Fatalf("unknown holder must hold nothing")
	}
}

func snapshotCoins(l *Ledger) []Coin {
	coins := make([]Coin, 0, len(l.coins))
	for _, c := range l.coins {
		coins = append(coins, c.copy())
	}
	return coins
}
