package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c.RecordingFPS < 0 || math.IsNaN(c.RecordingFPS) || math.IsInf(c.RecordingFPS, 0) {
		return fmt.Errorf("recording_fps must be positive (or 0 to use the recording's rate), got %v", c.RecordingFPS)
	}
	if !(c.TargetFPS > 0) || math.IsInf(c.TargetFPS, 0) {
		return fmt.Errorf("target_fps must be positive, got %v", c.TargetFPS)
	}
	if c.StartFrame < 0 {
		return errors.New("start_frame must not be negative")
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	return nil
}
