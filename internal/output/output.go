package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/animconv/internal/export"
)

// Document is the converted animation handed to a Blender importer
type Document struct {
	Version    string   `yaml:"version"`
	Source     string   `yaml:"source,omitempty"`
	TargetFPS  float64  `yaml:"fps"`
	FrameStart int      `yaml:"frame_start"`
	FrameEnd   int      `yaml:"frame_end"`
	Objects    []Object `yaml:"objects"`
}

// Object holds the converted keyframes of one scene node
type Object struct {
	Path      string                   `yaml:"path"`
	Keyframes []export.BlenderKeyframe `yaml:"keyframes"`
}

type Writer interface {
	Write(ctx context.Context, doc *Document) error
}

// YAMLWriter writes the document to Path, creating parent directories
type YAMLWriter struct {
	Path string
}

func (w *YAMLWriter) Write(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if dir := filepath.Dir(w.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	return os.WriteFile(w.Path, data, 0644)
}

// ReadDocument loads a document written by YAMLWriter
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return &doc, nil
}
