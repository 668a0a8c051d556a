package billing

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Service is the set of ledger operations exposed to transports.
type Service interface {
	ListParticipants() []Participant
	Emit(amount int64) (Receipt, error)
	Transfer(src, dst string, amount int64) (Receipt, error)
	LongestHistoryCoin() (Coin, error)
	Coin(id int64) (Coin, error)
	Digest() (Digest, error)
	Proof(id int64) (Proof, error)
}

// Receipt acknowledges a committed mutation.
type Receipt struct {
	ID      string
	Message string
}

func newReceipt(message string) Receipt {
	return Receipt{
		ID:      uuid.New().String(),
		Message: message,
	}
}

type Option func(*Ledger)

func WithTracer(tracer Tracer) Option {
	return func(l *Ledger) {
		l.tracer = tracer
	}
}

// Ledger holds participants and coins for the lifetime of the process.
// Every read and write goes through lock, so Emit and Transfer serialize
// and no reader observes a half applied mutation.
type Ledger struct {
	lock         sync.Mutex
	participants *participantMap

	// coins are kept in mint order, coins[i].ID == i+1
	coins  []*Coin
	lastID int64

	tracer Tracer
}

func New(seed []Participant, opts ...Option) (*Ledger, error) {
	participants, err := newParticipantMap(seed)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		participants: participants,
		coins:        make([]*Coin, 0),
		tracer:       nopTracer{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// ListParticipants returns participants in seed order.
func (l *Ledger) ListParticipants() []Participant {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.participants.snapshot()
}

// LongestHistoryCoin returns the coin with the longest provenance. Among
// coins of equal length the earliest minted wins.
func (l *Ledger) LongestHistoryCoin() (Coin, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if len(l.coins) == 0 {
		return Coin{}, ErrEmptyLedger
	}

	longest := l.coins[0]
	for _, c := range l.coins[1:] {
		if c.Hops() > longest.Hops() {
			longest = c
		}
	}
	return longest.copy(), nil
}

func (l *Ledger) Coin(id int64) (Coin, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	c, err := l.coin(id)
	if err != nil {
		return Coin{}, err
	}
	return c.copy(), nil
}

func (l *Ledger) coin(id int64) (*Coin, error) {
	if id < 1 || id > int64(len(l.coins)) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownCoin, id)
	}
	return l.coins[id-1], nil
}
