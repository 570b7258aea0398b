package main

import (
	"path/filepath"
	"testing"

	"github.com/bobmcallan/vibex/internal/config"
)

func TestConfigSearchPaths_Deduplicated(t *testing.T) {
	paths := configSearchPaths()
	if len(paths) == 0 {
		t.Fatal("expected at least one search path")
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			t.Fatalf("Abs(%s): %v", p, err)
		}
		if seen[abs] {
			t.Errorf("duplicate search path %s", p)
		}
		seen[abs] = true
	}
}

func TestConfigPaths_AccumulatesFlags(t *testing.T) {
	var c configPaths
	c.Set("base.toml")
	c.Set("override.toml")

	if len(c) != 2 || c[1] != "override.toml" {
		t.Errorf("unexpected config paths: %v", c)
	}
	if c.String() != "[base.toml override.toml]" {
		t.Errorf("unexpected String(): %s", c.String())
	}
}

func TestSetupLogger_UsesConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Logging.Outputs = []string{"memory"}

	if setupLogger(cfg) == nil {
		t.Fatal("expected a logger")
	}
}
