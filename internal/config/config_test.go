package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.UI.SearchDebounce != 300 {
			t.Errorf("expected default debounce 300, got %d", cfg.UI.SearchDebounce)
		}
		if cfg.UI.DefaultView != "grid" {
			t.Errorf("expected default grid view, got %q", cfg.UI.DefaultView)
		}
		if cfg.Catalog.Timeout != 30 {
			t.Errorf("expected default timeout 30, got %d", cfg.Catalog.Timeout)
		}
	})

	t.Run("saved settings survive a reload", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.Source = "https://example.com/catalog.json"
		cfg.UI.SearchDebounce = 150
		cfg.UI.DefaultView = "list"

		if err := SaveConfig(cfg); err != nil {
			t.Fatalf("SaveConfig: %v", err)
		}

		home, _ := os.UserHomeDir()
		if _, err := os.Stat(filepath.Join(home, ".config", "vitrin", "config.yaml")); err != nil {
			t.Fatalf("config file not written: %v", err)
		}

		got, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if got.Catalog.Source != "https://example.com/catalog.json" {
			t.Errorf("catalog source lost: %q", got.Catalog.Source)
		}
		if got.UI.SearchDebounce != 150 {
			t.Errorf("debounce lost: %d", got.UI.SearchDebounce)
		}
		if got.UI.DefaultView != "list" {
			t.Errorf("view mode lost: %q", got.UI.DefaultView)
		}
	})
}
