package billing

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewParticipantMap(t *testing.T) {
	m, err := newParticipantMap(defaultSeed())
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	if m.len() != 3 {
		t.Fatalf("expected size is %d, but got %d", 3, m.len())
	}

	p, ok := m.get("maria")
	if !ok {
		t.Fatalf("maria must exist")
	}
	if p.weight != 1000 || p.balance != 0 {
		t.Fatalf("expected maria{1000, 0}, but got {%d, %d}", p.weight, p.balance)
	}

	if _, ok := m.get("ghost"); ok {
		t.Fatalf("ghost must not exist")
	}
}

func TestParticipantMap_snapshotKeepsSeedOrder(t *testing.T) {
	m, err := newParticipantMap(defaultSeed())
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	snapshot := m.snapshot()
	if !reflect.DeepEqual(snapshot, defaultSeed()) {
		t.Fatalf("expected snapshot is %v, but got %v", defaultSeed(), snapshot)
	}

	// snapshots are detached from the map
	snapshot[0].Balance = 100
	if p, _ := m.get("boris"); p.balance != 0 {
		t.Fatalf("snapshot mutation leaked into participant map")
	}
}

func TestNewParticipantMap_invalidSeed(t *testing.T) {
	seeds := [][]Participant{
		nil,
		{{Name: "", Weight: 1}},
		{{Name: "boris", Weight: 0}},
		{{Name: "boris", Weight: -5}},
		{{Name: "boris", Weight: 1}, {Name: "boris", Weight: 2}},
	}

	for i, seed := range seeds {
		if _, err := newParticipantMap(seed); !errors.Is(err, ErrInvalidSeed) {
			t.Fatalf("test[%d] failed - expected ErrInvalidSeed, but got %v", i, err)
		}
	}
}
