package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ivlev/animconv/internal/export"
	"github.com/ivlev/animconv/internal/system"
)

type Config struct {
	InputPath    string  `toml:"input"`
	OutputPath   string  `toml:"output"`
	RecordingFPS float64 `toml:"recording_fps"` // 0: take it from the recording, else 1000
	TargetFPS    float64 `toml:"target_fps"`
	StartFrame   int     `toml:"start_frame"`
	Downsample   bool    `toml:"downsample"`
	Workers      int     `toml:"workers"`
	ShowStats    bool    `toml:"show_stats"`
	BuildVersion string  `toml:"-"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	opts := export.DefaultOptions()
	return Config{
		TargetFPS:  opts.TargetFPS,
		StartFrame: opts.StartFrame,
		Downsample: opts.Downsample,
	}
}

// Load reads a TOML config file on top of Default. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Workers == 0 {
		c.Workers = system.DefaultWorkers()
	}
}

// Options builds conversion options. recordingFPS is the rate stored in the
// recording itself; it is used when the config does not pin one.
func (c *Config) Options(recordingFPS float64) export.Options {
	opts := export.DefaultOptions()
	switch {
	case c.RecordingFPS > 0:
		opts.RecordingFPS = c.RecordingFPS
	case recordingFPS > 0:
		opts.RecordingFPS = recordingFPS
	}
	opts.TargetFPS = c.TargetFPS
	opts.StartFrame = c.StartFrame
	opts.Downsample = c.Downsample
	return opts
}
