package app

import (
	"path/filepath"
	"testing"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/config"
)

func testConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Environment = "dev"
	cfg.Storage.Backend = "memory"
	return cfg
}

func TestNew_WiresComponents(t *testing.T) {
	a, err := New(testConfig(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	if a.Requests.Len() != 6 {
		t.Errorf("expected 6 seeded requests, got %d", a.Requests.Len())
	}
	if a.Events.Len() != 6 {
		t.Errorf("expected 6 seeded events, got %d", a.Events.Len())
	}
	if a.Sessions == nil || a.Responses == nil {
		t.Error("expected sessions and response cache")
	}
	if a.HackUpHandler == nil || a.VConnectHandler == nil || a.QuizHandler == nil || a.ListingAPIHandler == nil {
		t.Error("expected page and API handlers")
	}
}

func TestNew_BadgerBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Backend = "badger"
	cfg.Storage.Badger.Path = filepath.Join(t.TempDir(), "db")

	a, err := New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNew_UnknownBackendFails(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Backend = "sqlite"

	if _, err := New(cfg, common.NewSilentLogger()); err == nil {
		t.Error("expected error for unknown storage backend")
	}
}

func TestNew_MissingSeedFileFails(t *testing.T) {
	cfg := testConfig()
	cfg.Seed.Path = filepath.Join(t.TempDir(), "missing.json")

	if _, err := New(cfg, common.NewSilentLogger()); err == nil {
		t.Error("expected error for a missing explicit seed file")
	}
}
