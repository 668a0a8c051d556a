package log_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DE-labtory/billing/log"
)

func TestDebug(t *testing.T) {
	log.SetToDebug()
	log.Debug("level", "debug")
}

func TestInfo(t *testing.T) {
	log.SetToInfo()
	log.Debug("level", "debug") // not printed
	log.Info("level", "info")
}

func TestSetLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "error", ""} {
		if err := log.SetLevel(lvl); err != nil {
			t.Fatalf("unexpected err for %q: %s", lvl, err)
		}
	}
	if err := log.SetLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	log.SetToInfo()
}

// printed console and file
func TestEnableFileLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "billing-log")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "nested", "billing.log")
	if err := log.EnableFileLogger(true, path); err != nil {
		t.Fatal(err)
	}
	defer log.EnableFileLogger(false, "")

	log.SetToInfo()
	log.Info("msg", "file logger enabled", "filepath", path)
	log.Debug("msg", "filtered out")

	content, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "file logger enabled") {
		t.Fatalf("expected info line in log file, but got %q", string(content))
	}
	if strings.Contains(string(content), "filtered out") {
		t.Fatalf("debug line must be filtered, but got %q", string(content))
	}
}

// printed only file
func TestEnableOnlyFileLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "billing-log")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "billing.log")
	if err := log.EnableOnlyFileLogger(true, path); err != nil {
		t.Fatal(err)
	}
	defer func() {
		log.EnableFileLogger(false, "")
		log.EnableStdLogger(true)
	}()

	log.With("component", "test").Log("msg", "only file")

	content, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "component=test") {
		t.Fatalf("expected component field in log file, but got %q", string(content))
	}
}
