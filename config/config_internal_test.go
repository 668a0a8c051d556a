package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/config.golden.yml")
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	if c.Identity.Address != "0.0.0.0:7000" {
		t.Fatalf("expected identity address is %s, but got %s", "0.0.0.0:7000", c.Identity.Address)
	}
	if c.Http.Address != "0.0.0.0:7001" {
		t.Fatalf("expected http address is %s, but got %s", "0.0.0.0:7001", c.Http.Address)
	}
	if c.IsDevelopment() {
		t.Fatalf("expected production environment, but got %s", c.Environment)
	}
	if c.Log.Level != "debug" || c.Log.File != "/tmp/billing/billing.log" {
		t.Fatalf("unexpected log config %+v", c.Log)
	}

	expected := []Participant{{Name: "alice", Weight: 3}, {Name: "bob", Weight: 1}}
	if !reflect.DeepEqual(c.Ledger.Participants, expected) {
		t.Fatalf("expected participants are %v, but got %v", expected, c.Ledger.Participants)
	}
}

func TestLoad_envOverride(t *testing.T) {
	os.Setenv("BILLING_IDENTITY_ADDRESS", "127.0.0.1:9999")
	defer os.Unsetenv("BILLING_IDENTITY_ADDRESS")

	c, err := Load("testdata/config.golden.yml")
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if c.Identity.Address != "127.0.0.1:9999" {
		t.Fatalf("expected identity address is %s, but got %s", "127.0.0.1:9999", c.Identity.Address)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load("testdata/missing.yml"); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestGetConfiguration(t *testing.T) {
	configPath = "testdata/config.golden.yml"

	c := Get()
	if len(c.Ledger.Participants) != 2 {
		t.Fatalf("expected %d participants, but got %d", 2, len(c.Ledger.Participants))
	}
	if Get() != c {
		t.Fatalf("Get must return the loaded config")
	}
}
