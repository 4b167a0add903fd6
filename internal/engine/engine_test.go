package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ivlev/animconv/internal/config"
	"github.com/ivlev/animconv/internal/output"
	"github.com/ivlev/animconv/internal/scene"
	"github.com/ivlev/animconv/internal/source"
	"github.com/ivlev/animconv/internal/timebase"
)

type captureWriter struct {
	doc *output.Document
}

func (w *captureWriter) Write(ctx context.Context, doc *output.Document) error {
	w.doc = doc
	return nil
}

func testRecording() *scene.Recording {
	nodes := []*scene.Node{
		{
			Path: "/Cart",
			Keyframes: []scene.Keyframe{
				{Time: 0, Position: &scene.Vec3{0, 0, 0}},
				{Time: 1000, Position: &scene.Vec3{10, 0, 0}},
			},
		},
		{
			Path: "/Cart/Pole",
			Keyframes: []scene.Keyframe{
				{Time: 500, Rotation: &scene.Quat{0, 0, 0, 1}},
				{Time: 2000, Rotation: &scene.Quat{0, 0, 1, 0}},
			},
		},
		{Path: "/Static"},
	}
	return &scene.Recording{Version: "1.0", RecordingFPS: 1000, Nodes: nodes}
}

func testConfig(workers int) *config.Config {
	cfg := config.Default()
	cfg.Workers = workers
	return &cfg
}

func TestRun(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		w := &captureWriter{}
		p := NewProject(testConfig(workers), &source.MemorySource{Rec: testRecording()}, w)

		report, err := p.Run(context.Background())
		if err != nil {
			t.Fatalf("workers=%d: Run failed: %v", workers, err)
		}

		if report.FrameStart != 0 || report.FrameEnd != 60 {
			t.Errorf("Expected range (0, 60), got (%d, %d)", report.FrameStart, report.FrameEnd)
		}
		if w.doc == nil {
			t.Fatal("Document was not written")
		}

		paths := []string{"/Cart", "/Cart/Pole", "/Static"}
		if len(w.doc.Objects) != len(paths) {
			t.Fatalf("Expected %d objects, got %d", len(paths), len(w.doc.Objects))
		}
		for i, path := range paths {
			if w.doc.Objects[i].Path != path {
				t.Errorf("Object %d: expected %s, got %s", i, path, w.doc.Objects[i].Path)
			}
		}

		if n := len(w.doc.Objects[0].Keyframes); n != 31 {
			t.Errorf("Expected 31 keyframes for /Cart, got %d", n)
		}
		if n := len(w.doc.Objects[1].Keyframes); n != 61 {
			t.Errorf("Expected 61 keyframes for /Cart/Pole, got %d", n)
		}
		if n := len(w.doc.Objects[2].Keyframes); n != 0 {
			t.Errorf("Expected no keyframes for /Static, got %d", n)
		}

		pole := report.Nodes[1]
		if pole.InputKeys != 2 || pole.OutputKeys != 61 || pole.FirstFrame != 0 || pole.LastFrame != 60 {
			t.Errorf("Unexpected stats: %+v", pole)
		}
	}
}

func TestRunUsesRecordingRate(t *testing.T) {
	rec := testRecording()
	rec.RecordingFPS = 500

	w := &captureWriter{}
	p := NewProject(testConfig(2), &source.MemorySource{Rec: rec}, w)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Options.RecordingFPS != 500 {
		t.Errorf("Expected recording rate 500, got %v", report.Options.RecordingFPS)
	}
	if report.FrameEnd != 120 {
		t.Errorf("Expected last frame 120, got %d", report.FrameEnd)
	}
}

func TestRunRejectsBadRates(t *testing.T) {
	cfg := testConfig(1)
	cfg.TargetFPS = 0

	p := NewProject(cfg, &source.MemorySource{Rec: testRecording()}, &captureWriter{})
	if _, err := p.Run(context.Background()); !errors.Is(err, timebase.ErrDomain) {
		t.Errorf("Expected domain error, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProject(testConfig(1), &source.MemorySource{Rec: testRecording()}, &captureWriter{})
	if _, err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRunWritesYAML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "rec.yaml")
	out := filepath.Join(dir, "out", "anim.yaml")

	if err := scene.WriteRecording(testRecording(), in); err != nil {
		t.Fatal(err)
	}
	src, err := source.NewFileSource(in)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	cfg := testConfig(4)
	cfg.InputPath = in
	cfg.StartFrame = 1

	if _, err := NewProject(cfg, src, &output.YAMLWriter{Path: out}).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	doc, err := output.ReadDocument(out)
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	if doc.FrameStart != 1 || doc.FrameEnd != 61 || doc.Source != in {
		t.Errorf("Unexpected document header: %+v", doc)
	}
	if first := doc.Objects[0].Keyframes[0]; first.Frame != 1 {
		t.Errorf("Expected first frame 1, got %d", first.Frame)
	}
}
