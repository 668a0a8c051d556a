package billing_test

import (
	"errors"
	"testing"

	"github.com/DE-labtory/billing"
)

func TestToAddress(t *testing.T) {
	addr, err := billing.ToAddress("127.0.0.1:5000")
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if addr.Ip != "127.0.0.1" || addr.Port != 5000 {
		t.Fatalf("expected address is 127.0.0.1:5000, but got %s", addr)
	}
	if addr.String() != "127.0.0.1:5000" {
		t.Fatalf("expected string is 127.0.0.1:5000, but got %s", addr.String())
	}
}

func TestToAddress_invalid(t *testing.T) {
	for _, input := range []string{"localhost", "localhost:port", "localhost:70000", ""} {
		if _, err := billing.ToAddress(input); !errors.Is(err, billing.ErrInvalidAddress) {
			t.Fatalf("expected ErrInvalidAddress for %q, but got %v", input, err)
		}
	}
}
