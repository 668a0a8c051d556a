package mock

import "github.com/DE-labtory/billing"

type Ledger struct {
	ListParticipantsFunc   func() []billing.Participant
	EmitFunc               func(amount int64) (billing.Receipt, error)
	TransferFunc           func(src, dst string, amount int64) (billing.Receipt, error)
	LongestHistoryCoinFunc func() (billing.Coin, error)
	CoinFunc               func(id int64) (billing.Coin, error)
	DigestFunc             func() (billing.Digest, error)
	ProofFunc              func(id int64) (billing.Proof, error)
}

func (l *Ledger) ListParticipants() []billing.Participant {
	return l.ListParticipantsFunc()
}
func (l *Ledger) Emit(amount int64) (billing.Receipt, error) {
	return l.EmitFunc(amount)
}
func (l *Ledger) Transfer(src, dst string, amount int64) (billing.Receipt, error) {
	return l.TransferFunc(src, dst, amount)
}
func (l *Ledger) LongestHistoryCoin() (billing.Coin, error) {
	return l.LongestHistoryCoinFunc()
}
func (l *Ledger) Coin(id int64) (billing.Coin, error) {
	return l.CoinFunc(id)
}
func (l *Ledger) Digest() (billing.Digest, error) {
	return l.DigestFunc()
}
func (l *Ledger) Proof(id int64) (billing.Proof, error) {
	return l.ProofFunc(id)
}
