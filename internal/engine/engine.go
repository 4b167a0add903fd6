package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/animconv/internal/config"
	"github.com/ivlev/animconv/internal/export"
	"github.com/ivlev/animconv/internal/output"
	"github.com/ivlev/animconv/internal/source"
)

const documentVersion = "1.0"

type Project struct {
	Config *config.Config
	Source source.Source
	Writer output.Writer
}

// NodeStats describes the conversion of a single node
type NodeStats struct {
	Path       string
	InputKeys  int
	OutputKeys int
	FirstFrame int
	LastFrame  int
}

// Report summarizes a Run
type Report struct {
	Options    export.Options
	FrameStart int
	FrameEnd   int
	Nodes      []NodeStats
	LoadTime   time.Duration
	ConvTime   time.Duration
	WriteTime  time.Duration
	TotalTime  time.Duration
}

func NewProject(cfg *config.Config, src source.Source, w output.Writer) *Project {
	return &Project{
		Config: cfg,
		Source: src,
		Writer: w,
	}
}

func (p *Project) Run(ctx context.Context) (*Report, error) {
	startTime := time.Now()

	rec, err := p.Source.Recording()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения записи: %w", err)
	}
	loadTime := time.Since(startTime)

	opts := p.Config.Options(rec.RecordingFPS)
	nodeCount := len(rec.Nodes)

	fmt.Println("--- [ANIMCONV] ---")
	fmt.Printf("[*] Узлов: %d | Ключей: %d\n", nodeCount, rec.KeyframeCount())
	fmt.Printf("[*] %.2f FPS -> %.2f FPS | Старт: %d | Даунсэмплинг: %v\n",
		opts.RecordingFPS, opts.TargetFPS, opts.StartFrame, opts.Downsample)
	fmt.Println("------------------")

	frameStart, frameEnd, err := export.AnimationRange(rec.Nodes, opts)
	if err != nil {
		return nil, err
	}

	// Each goroutine writes only its own slot, so node order is preserved
	objects := make([]output.Object, nodeCount)
	stats := make([]NodeStats, nodeCount)

	convStart := time.Now()
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers(nodeCount))

	for i, node := range rec.Nodes {
		i, node := i, node
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			keys, err := export.Convert(node.Keyframes, opts)
			if err != nil {
				return fmt.Errorf("узел %s: %w", node.Path, err)
			}

			objects[i] = output.Object{Path: node.Path, Keyframes: keys}
			stats[i] = nodeStats(node.Path, len(node.Keyframes), keys)

			fmt.Printf("[>] Готово: %d/%d (%s)\n", done.Add(1), nodeCount, node.Path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	convTime := time.Since(convStart)

	doc := &output.Document{
		Version:    documentVersion,
		Source:     p.Config.InputPath,
		TargetFPS:  opts.TargetFPS,
		FrameStart: frameStart,
		FrameEnd:   frameEnd,
		Objects:    objects,
	}

	writeStart := time.Now()
	if err := p.Writer.Write(ctx, doc); err != nil {
		return nil, fmt.Errorf("ошибка записи результата: %w", err)
	}

	return &Report{
		Options:    opts,
		FrameStart: frameStart,
		FrameEnd:   frameEnd,
		Nodes:      stats,
		LoadTime:   loadTime,
		ConvTime:   convTime,
		WriteTime:  time.Since(writeStart),
		TotalTime:  time.Since(startTime),
	}, nil
}

func (p *Project) workers(nodeCount int) int {
	n := p.Config.Workers
	if n > nodeCount {
		n = nodeCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

func nodeStats(path string, inputKeys int, keys []export.BlenderKeyframe) NodeStats {
	s := NodeStats{Path: path, InputKeys: inputKeys, OutputKeys: len(keys)}
	for i, k := range keys {
		if i == 0 || k.Frame < s.FirstFrame {
			s.FirstFrame = k.Frame
		}
		if i == 0 || k.Frame > s.LastFrame {
			s.LastFrame = k.Frame
		}
	}
	return s
}
