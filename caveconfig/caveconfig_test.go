package caveconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Options != DefaultOptions() {
		t.Errorf("Options = %+v, want defaults", cfg.Options)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if reloaded.Options != cfg.Options {
		t.Errorf("reloaded Options = %+v, want %+v", reloaded.Options, cfg.Options)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.json")

	cfg := NewCaveConfig().
		SetCaveSize(32, 20).
		SetSmoothing(true).
		SetRemoveDiagonals(false).
		SetSeed(42).
		SetFillDensity(0.5)

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Options.Width != 32 || loaded.Options.Height != 20 {
		t.Errorf("Options size = %dx%d, want 32x20", loaded.Options.Width, loaded.Options.Height)
	}
	if loaded.Options.RemoveDiagonals {
		t.Errorf("RemoveDiagonals = true, want false")
	}
	if loaded.GenParams.Seed != 42 {
		t.Errorf("Seed = %d, want 42", loaded.GenParams.Seed)
	}
}

func TestLoadInvalidJSONFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cave.json")
	if err := writeFile(path, []byte("not json")); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("Load: want error for invalid JSON")
	}
	if cfg.Options != DefaultOptions() {
		t.Errorf("Options = %+v, want defaults on parse failure", cfg.Options)
	}
}

func TestLoadInvalidDimensionsFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cave.json")
	bad := `{"options":{"width":0,"height":10},"gen_params":{"fill_density":0.4,"generations":[{"birth":5,"survive":4}]}}`
	if err := writeFile(path, []byte(bad)); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("Load: want error for invalid dimensions")
	}
	if cfg.Options != DefaultOptions() {
		t.Errorf("Options = %+v, want defaults on validation failure", cfg.Options)
	}
}

func TestSetGenerationsUpdatesIterations(t *testing.T) {
	cfg := NewCaveConfig().SetGenerations([]GenerationStep{{Birth: 5, Survive: 4}, {Birth: 6, Survive: 3}})
	if cfg.GenParams.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", cfg.GenParams.Iterations)
	}
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
