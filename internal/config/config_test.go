package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TargetFPS != 30 {
		t.Errorf("Expected target fps 30, got %v", cfg.TargetFPS)
	}
	if !cfg.Downsample {
		t.Error("Expected downsampling enabled by default")
	}
	if cfg.Workers < 1 {
		t.Errorf("Expected detected worker count, got %d", cfg.Workers)
	}
	if cfg.RecordingFPS != 0 {
		t.Errorf("Expected recording fps to defer to the recording, got %v", cfg.RecordingFPS)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animconv.toml")
	body := `
recording_fps = 500.0
target_fps = 24.0
start_frame = 1
downsample = false
workers = 3
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RecordingFPS != 500 || cfg.TargetFPS != 24 || cfg.StartFrame != 1 || cfg.Downsample || cfg.Workers != 3 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not found error, got %v", err)
	}

	unknown := filepath.Join(dir, "unknown.toml")
	os.WriteFile(unknown, []byte("zoom_mode = \"center\"\n"), 0644)
	if _, err := Load(unknown); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error for unknown key, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Workers = 2

	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"valid", func(c *Config) {}, ""},
		{"negative recording", func(c *Config) { c.RecordingFPS = -1 }, "recording_fps"},
		{"zero target", func(c *Config) { c.TargetFPS = 0 }, "target_fps"},
		{"negative start", func(c *Config) { c.StartFrame = -5 }, "start_frame"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error about %s, got %v", tt.want, err)
			}
		})
	}
}

func TestOptionsRecordingRate(t *testing.T) {
	cfg := Default()

	if got := cfg.Options(0).RecordingFPS; got != 1000 {
		t.Errorf("Expected fallback 1000, got %v", got)
	}
	if got := cfg.Options(240).RecordingFPS; got != 240 {
		t.Errorf("Expected recording rate 240, got %v", got)
	}

	cfg.RecordingFPS = 120
	opts := cfg.Options(240)
	if opts.RecordingFPS != 120 {
		t.Errorf("Expected config rate 120 to win, got %v", opts.RecordingFPS)
	}
	if opts.TargetFPS != 30 || !opts.Downsample {
		t.Errorf("Unexpected options: %+v", opts)
	}
}
