package start

import (
	"errors"
	"testing"

	"github.com/DE-labtory/billing"
	"github.com/DE-labtory/billing/config"
)

func TestStartBilling_invalidConfig(t *testing.T) {
	seed := []config.Participant{{Name: "boris", Weight: 1}}

	tests := []struct {
		conf     *config.Config
		expected error
	}{
		{
			conf: &config.Config{
				Identity: config.Identity{Address: "127.0.0.1:5000"},
				Log:      config.Log{Level: "info"},
			},
			expected: billing.ErrInvalidSeed,
		},
		{
			conf: &config.Config{
				Identity: config.Identity{Address: "nowhere"},
				Log:      config.Log{Level: "info"},
				Ledger:   config.Ledger{Participants: seed},
			},
			expected: billing.ErrInvalidAddress,
		},
	}

	for i, test := range tests {
		if err := startBilling(test.conf, false); !errors.Is(err, test.expected) {
			t.Fatalf("test[%d] failed - expected %v, but got %v", i, test.expected, err)
		}
	}

	bad := &config.Config{Log: config.Log{Level: "loud"}}
	if err := startBilling(bad, false); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
