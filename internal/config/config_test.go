package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device.Name != "launchpad" {
		t.Errorf("Device.Name = %q, want %q", cfg.Device.Name, "launchpad")
	}
	if cfg.Device.MappingMode != MappingXY {
		t.Errorf("Device.MappingMode = %q, want %q", cfg.Device.MappingMode, MappingXY)
	}
	if cfg.Device.ID == "" {
		t.Error("Device.ID is empty, want generated ID")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[device]
name = "Launchpad Mini"
mapping_mode = "drum"
flashing = true

[logging]
level = "debug"
format = "json"

[metrics]
enabled = true
address = "127.0.0.1:9200"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device.Name != "Launchpad Mini" {
		t.Errorf("Device.Name = %q, want %q", cfg.Device.Name, "Launchpad Mini")
	}
	if cfg.Device.MappingMode != MappingDrum {
		t.Errorf("Device.MappingMode = %q, want %q", cfg.Device.MappingMode, MappingDrum)
	}
	if !cfg.Device.Flashing {
		t.Error("Device.Flashing = false, want true")
	}
	if !cfg.Device.ClearOnStart {
		t.Error("Device.ClearOnStart = false, want default true")
	}
	if cfg.Device.ID == "" {
		t.Error("Device.ID is empty, want generated ID")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Address != "127.0.0.1:9200" {
		t.Errorf("Metrics = %+v, want enabled on 127.0.0.1:9200", cfg.Metrics)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad toml", "[device\nname = 1", "failed to parse"},
		{"bad mapping mode", "[device]\nmapping_mode = \"session\"", "unknown mapping mode"},
		{"bad log format", "[logging]\nformat = \"xml\"", "unknown log format"},
		{"metrics without address", "[metrics]\nenabled = true\naddress = \"\"", "without an address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Device.Name = "Launchpad S"
	cfg.Device.Flashing = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Device != cfg.Device {
		t.Errorf("Device = %+v, want %+v", loaded.Device, cfg.Device)
	}
}

func TestLoadKeepsSavedID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Unsaved() {
		t.Fatal("Unsaved() = false for a missing file, want true")
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if cfg.Unsaved() {
		t.Error("Unsaved() = true after Save, want false")
	}

	first, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if first.Device.ID != cfg.Device.ID || second.Device.ID != cfg.Device.ID {
		t.Errorf("Device.ID = %q, %q, want %q", first.Device.ID, second.Device.ID, cfg.Device.ID)
	}
	if first.Unsaved() {
		t.Error("Unsaved() = true for a file with an id, want false")
	}
}

func TestLoadFileWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[device]\nname = \"Launchpad S\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Unsaved() {
		t.Error("Unsaved() = false after generating an id, want true")
	}
}
