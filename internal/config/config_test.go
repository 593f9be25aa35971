package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Sim != "life" || cfg.Steps != 1000 || cfg.Batch.Runs != 1 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Params == nil {
		t.Fatalf("params map should be allocated")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "sim: langton\nparams:\n  w: \"64\"\nbatch:\n  runs: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sim != "langton" || cfg.Batch.Runs != 3 || cfg.Params["w"] != "64" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Batch.Workers != 4 || cfg.Steps != 1000 {
		t.Fatalf("defaults lost for absent keys: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("sim: drift\nsteps: 20\nseed: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var list bool
	cfg, err := Parse("alife", []string{"-config", path, "-steps", "7", "-set", "w=10", "-set", "h = 12", "-list"}, func(fs *flag.FlagSet) {
		fs.BoolVar(&list, "list", false, "")
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "drift" || cfg.Seed != 5 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Steps != 7 {
		t.Fatalf("flag did not override file: steps=%d", cfg.Steps)
	}
	if cfg.Params["w"] != "10" || cfg.Params["h"] != "12" {
		t.Fatalf("params not parsed: %v", cfg.Params)
	}
	if !list {
		t.Fatalf("extra flag not bound")
	}
}

func TestParseRejectsBadParam(t *testing.T) {
	if _, err := Parse("alife", []string{"-set", "novalue"}, nil); err == nil {
		t.Fatalf("expected error for malformed -set")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Batch.Runs = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	cfg = Default()
	cfg.Render.Every = 0
	cfg.Batch.Workers = -2
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Render.Every != 1 || cfg.Batch.Workers != 1 {
		t.Fatalf("expected clamped values, got %+v", cfg)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Sim = "langton"
	cfg.Params["w"] = "30"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Sim != "langton" || back.Params["w"] != "30" {
		t.Fatalf("unexpected round trip %+v", back)
	}
}
