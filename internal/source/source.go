package source

import (
	"fmt"

	"github.com/ivlev/animconv/internal/scene"
)

// Source provides the recording to convert
type Source interface {
	Recording() (*scene.Recording, error)
	Close() error
}

// FileSource reads a YAML recording from disk. The file is parsed once and
// cached for subsequent calls.
type FileSource struct {
	path string
	rec  *scene.Recording
}

func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("recording path is empty")
	}
	return &FileSource{path: path}, nil
}

func (f *FileSource) Path() string {
	return f.path
}

func (f *FileSource) Recording() (*scene.Recording, error) {
	if f.rec != nil {
		return f.rec, nil
	}
	rec, err := scene.ReadRecording(f.path)
	if err != nil {
		return nil, err
	}
	f.rec = rec
	return rec, nil
}

func (f *FileSource) Close() error {
	f.rec = nil
	return nil
}

// MemorySource serves an already loaded recording
type MemorySource struct {
	Rec *scene.Recording
}

func (m *MemorySource) Recording() (*scene.Recording, error) {
	if m.Rec == nil {
		return nil, fmt.Errorf("no recording loaded")
	}
	if err := m.Rec.Validate(); err != nil {
		return nil, err
	}
	return m.Rec, nil
}

func (m *MemorySource) Close() error {
	return nil
}
