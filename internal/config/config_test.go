package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("expected defaults for a missing config file, got %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults for an empty path, got %+v", cfg)
	}
}

func TestLoadOverridesOnlySpecifiedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colagsim.toml")
	body := "workers = 8\ntargets = [611, 612]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected workers=8, got %d", cfg.Workers)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[0] != 611 || cfg.Targets[1] != 612 {
		t.Errorf("expected targets=[611 612], got %v", cfg.Targets)
	}
	if cfg.SentenceFile != Default().SentenceFile {
		t.Errorf("expected an untouched key to keep its default, got %q", cfg.SentenceFile)
	}
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("workers = \"not a number\" = what"), 0o644); err != nil {
		t.Fatalf("write bad config fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error decoding a malformed TOML file")
	}
}
