package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.HomeCountry != DefaultHomeCountry {
		t.Errorf("homeCountry = %q, want %q", cfg.HomeCountry, DefaultHomeCountry)
	}
	if cfg.TopVenues != DefaultTopVenues {
		t.Errorf("topVenues = %d, want %d", cfg.TopVenues, DefaultTopVenues)
	}
	if cfg.TopFriends != DefaultTopFriends {
		t.Errorf("topFriends = %d, want %d", cfg.TopFriends, DefaultTopFriends)
	}
	if cfg.CoordPrecision != DefaultCoordPrecision {
		t.Errorf("coordPrecision = %d, want %d", cfg.CoordPrecision, DefaultCoordPrecision)
	}
	if cfg.Timezone != "" {
		t.Errorf("timezone = %q, want empty (process-local)", cfg.Timezone)
	}
}

func TestLoadNoPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapstats.yaml")
	content := "homeCountry: France\ntimezone: Europe/Paris\ntopFriends: 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HomeCountry != "France" {
		t.Errorf("homeCountry = %q, want France", cfg.HomeCountry)
	}
	if cfg.Timezone != "Europe/Paris" {
		t.Errorf("timezone = %q, want Europe/Paris", cfg.Timezone)
	}
	if cfg.TopFriends != 3 {
		t.Errorf("topFriends = %d, want 3", cfg.TopFriends)
	}
	// Untouched fields keep defaults.
	if cfg.TopVenues != DefaultTopVenues {
		t.Errorf("topVenues = %d, want default %d", cfg.TopVenues, DefaultTopVenues)
	}
}

func TestLoadZeroSizesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapstats.yaml")
	if err := os.WriteFile(path, []byte("topVenues: 0\ntopFriends: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TopVenues != DefaultTopVenues {
		t.Errorf("topVenues = %d, want default %d", cfg.TopVenues, DefaultTopVenues)
	}
	if cfg.TopFriends != DefaultTopFriends {
		t.Errorf("topFriends = %d, want default %d", cfg.TopFriends, DefaultTopFriends)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("topVenues: [this is not an int\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
