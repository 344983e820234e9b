package config

import (
	"os"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "physics:\n  gravity: 0.8\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics:\n  gravity: 1.5\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs:
			// The write may be observed mid-flight as an empty file, which parses to defaults.
			if cfg.Physics.Gravity == 1.5 {
				return
			}
		case <-w.Errors:
		case <-deadline:
			t.Fatal("timed out waiting for reloaded config")
		}
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "physics:\n  gravity: 0.8\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case err := <-w.Errors:
		if err == nil {
			t.Error("expected a non-nil error")
		}
	case cfg := <-w.Configs:
		t.Errorf("invalid config should not be delivered, got gravity %v", cfg.Physics.Gravity)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
	if _, ok := <-w.Configs; ok {
		t.Error("Configs should be closed after Close()")
	}
}
