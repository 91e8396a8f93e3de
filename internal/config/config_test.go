package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.K != 1.5 {
		t.Errorf("expected k 1.5, got %g", cfg.K)
	}
	if cfg.Y0 != 100 {
		t.Errorf("expected y0 100, got %g", cfg.Y0)
	}
	if cfg.H != 0.2 {
		t.Errorf("expected h 0.2, got %g", cfg.H)
	}
	if cfg.TFinal != 1.0 {
		t.Errorf("expected t_final 1, got %g", cfg.TFinal)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("demo")
	if cfg == nil {
		t.Fatal("demo preset missing")
	}
	if cfg.H != 0.2 {
		t.Errorf("demo h = %g, want 0.2", cfg.H)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for name := range Presets {
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	want := &Config{K: -0.5, Y0: 10, T0: 1, TFinal: 3, H: 0.05, CurvePoints: 50}
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("h: 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.H != 0.05 {
		t.Errorf("h = %g, want 0.05", cfg.H)
	}
	if cfg.K != DefaultGrowthRate || cfg.Y0 != DefaultInitial {
		t.Errorf("missing fields should fall back to defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero step", Config{H: 0, TFinal: 1, CurvePoints: 100}},
		{"negative step", Config{H: -0.1, TFinal: 1, CurvePoints: 100}},
		{"reversed interval", Config{H: 0.1, T0: 2, TFinal: 1, CurvePoints: 100}},
		{"degenerate curve", Config{H: 0.1, TFinal: 1, CurvePoints: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
