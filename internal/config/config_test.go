package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Element != ElementInt {
		t.Errorf("expected element int, got %s", cfg.Element)
	}
	if cfg.Arrays == nil {
		t.Error("arrays map should be initialised")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("subtract")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Arrays["b"]) != 3 {
		t.Errorf("expected 3 elements in b, got %d", len(cfg.Arrays["b"]))
	}

	// presets are handed out as copies
	cfg.Arrays["b"][0] = 99
	cfg.Element = ElementFloat
	again := GetPreset("subtract")
	if again.Arrays["b"][0] != 1 || again.Element != ElementInt {
		t.Error("GetPreset returned a shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty element", Config{}, false},
		{"float", Config{Element: ElementFloat}, false},
		{"bad element", Config{Element: "complex"}, true},
		{"missing op", Config{Steps: []Step{{Target: "a"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := GetPreset("divide")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != "divide" {
		t.Errorf("expected name divide, got %s", loaded.Name)
	}
	if len(loaded.Steps) != len(cfg.Steps) {
		t.Fatalf("expected %d steps, got %d", len(cfg.Steps), len(loaded.Steps))
	}
	if loaded.Steps[2].Scalar == nil || *loaded.Steps[2].Scalar != 0 {
		t.Error("zero scalar did not survive a round trip")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	src := `element: float
arrays:
  a: [10, 10]
  b: [1, 2, 3]
steps:
  - {op: sub, left: a, right: b, into: c}
  - {op: mul_assign, target: a, scalar: 0.5}
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Element != ElementFloat {
		t.Errorf("expected float element, got %s", cfg.Element)
	}
	if got := cfg.Steps[1].Scalar; got == nil || *got != 0.5 {
		t.Errorf("expected scalar 0.5, got %v", got)
	}
	if cfg.Steps[0].Into != "c" {
		t.Errorf("expected into c, got %s", cfg.Steps[0].Into)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("element: complex\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown element type")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
