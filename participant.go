package billing

import "fmt"

// Participant is a read-only snapshot of a named coin holder.
type Participant struct {
	Name    string
	Weight  int64
	Balance int64
}

type participant struct {
	name    string
	weight  int64
	balance int64
}

func (p *participant) snapshot() Participant {
	return Participant{
		Name:    p.name,
		Weight:  p.weight,
		Balance: p.balance,
	}
}

// participantMap keeps participants in seed order with lookup by name.
// It is not safe for concurrent use; Ledger guards it.
type participantMap struct {
	order  []*participant
	byName map[string]*participant
}

func newParticipantMap(seed []Participant) (*participantMap, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", ErrInvalidSeed)
	}

	m := &participantMap{
		order:  make([]*participant, 0, len(seed)),
		byName: make(map[string]*participant, len(seed)),
	}
	for _, s := range seed {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: participant name is empty", ErrInvalidSeed)
		}
		if s.Weight <= 0 {
			return nil, fmt.Errorf("%w: weight of %s must be positive, got %d", ErrInvalidSeed, s.Name, s.Weight)
		}
		if _, ok := m.byName[s.Name]; ok {
			return nil, fmt.Errorf("%w: duplicated participant %s", ErrInvalidSeed, s.Name)
		}

		p := &participant{name: s.Name, weight: s.Weight}
		m.order = append(m.order, p)
		m.byName[s.Name] = p
	}

	return m, nil
}

func (m *participantMap) get(name string) (*participant, bool) {
	p, ok := m.byName[name]
	return p, ok
}

func (m *participantMap) len() int {
	return len(m.order)
}

func (m *participantMap) snapshot() []Participant {
	participants := make([]Participant, 0, len(m.order))
	for _, p := range m.order {
		participants = append(participants, p.snapshot())
	}
	return participants
}
