package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStoreWritesDefaults(t *testing.T) {
	driver := NewMemory()

	store, err := NewStore(driver)
	if err != nil {
		t.Fatal(err)
	}

	exists, err := driver.Exists()
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatalf("expected defaults written on first use")
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Workspaces) != 5 {
		t.Fatalf("expected 5 default workspaces, got %d", len(cfg.Workspaces))
	}
	if !cfg.FocusMouse || cfg.BarHeight != 20 || cfg.BorderPx != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestUpdateConfigRoundTrips(t *testing.T) {
	store, err := NewStore(NewMemory())
	if err != nil {
		t.Fatal(err)
	}

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.BarHeight = 30
		return cfg, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BarHeight != 30 {
		t.Fatalf("expected updated bar height, got %d", cfg.BarHeight)
	}
}

func TestNormalizeAssignsUUIDs(t *testing.T) {
	store, err := NewStore(NewMemory())
	if err != nil {
		t.Fatal(err)
	}

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.Workspaces[0].UUID = "keep-me"
		return cfg, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := Normalize(store); err != nil {
		t.Fatal(err)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workspaces[0].UUID != "keep-me" {
		t.Fatalf("existing UUID must be kept, got %q", cfg.Workspaces[0].UUID)
	}
	seen := map[string]bool{}
	for _, ws := range cfg.Workspaces {
		if ws.UUID == "" {
			t.Fatalf("workspace %q has no UUID after normalize", ws.Name)
		}
		if seen[ws.UUID] {
			t.Fatalf("duplicate UUID %q", ws.UUID)
		}
		seen[ws.UUID] = true
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "howm.yaml")
	driver := NewYAML(path)

	store, err := NewStore(driver)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file on disk: %v", err)
	}

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.Workspaces = append(cfg.Workspaces, Workspace{Name: "six", Layout: "vstack"})
		return cfg, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := NewYAML(path).Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Workspaces) != 6 || cfg.Workspaces[5].Layout != "vstack" {
		t.Fatalf("unexpected config after round trip: %+v", cfg.Workspaces)
	}
}

func TestYAMLReadMissingFileReturnsDefaults(t *testing.T) {
	driver := NewYAML(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := driver.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Workspaces) != len(defaultConfig.Workspaces) {
		t.Fatalf("expected defaults for missing file, got %+v", cfg)
	}
}
