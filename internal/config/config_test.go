package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a config file that does not exist; defaults should apply.
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DataDir != "data" {
		t.Errorf("data_dir: got %q, want data", c.DataDir)
	}
	if c.PageSize != 5 {
		t.Errorf("page_size: got %d, want 5", c.PageSize)
	}
}

func TestLoadFromFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("data_dir: /srv/trips\npage_size: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DataDir != "/srv/trips" {
		t.Errorf("data_dir: got %q, want /srv/trips", c.DataDir)
	}
	if c.PageSize != 3 {
		t.Errorf("page_size: got %d, want 3", c.PageSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{DataDir: "/srv/trips", PageSize: 7}
	if err := Save(want, cfgFile); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataDir != want.DataDir || got.PageSize != want.PageSize {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadClampsPageSize(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("page_size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.PageSize != 5 {
		t.Errorf("page_size: got %d, want clamped 5", c.PageSize)
	}
}
