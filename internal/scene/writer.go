package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// WriteRecording writes a recording to a YAML file
func WriteRecording(rec *Recording, path string) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadRecording reads a recording from a YAML file
func ReadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording %s: %w", path, err)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recording %s: %w", path, err)
	}

	return &rec, nil
}

// FindLatestRecording finds the most recently modified recording in dir
func FindLatestRecording(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read recordings directory: %w", err)
	}

	var latestFile string
	var latestTime time.Time

	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, entry.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no recording files found in %s", dir)
	}

	return latestFile, nil
}
