// Package resample converts sparse, irregular keyframe tracks into evenly
// spaced tracks at a lower frame rate.
//
// Positions and scales are interpolated linearly, rotations with shortest-path
// nlerp. Every track is anchored at source time 0, so tracks that begin at
// different offsets stay in sync after resampling.
package resample

import (
	"math"
	"sort"

	"github.com/ivlev/animconv/internal/scene"
	"github.com/ivlev/animconv/internal/timebase"
)

// Result is the outcome of Resample
type Result struct {
	Keyframes []scene.Keyframe
	// Resampled is true when Keyframes were re-timed onto the target grid,
	// i.e. Time holds target frame indices instead of source samples.
	Resampled bool
}

// Downsample resamples keyframes recorded at recordingFPS onto a grid of
// targetFPS. When targetFPS >= recordingFPS the input is returned unchanged.
func Downsample(keyframes []scene.Keyframe, recordingFPS, targetFPS float64) ([]scene.Keyframe, error) {
	res, err := Resample(keyframes, recordingFPS, targetFPS)
	if err != nil {
		return nil, err
	}
	return res.Keyframes, nil
}

// Resample is Downsample that also reports whether re-timing happened
func Resample(keyframes []scene.Keyframe, recordingFPS, targetFPS float64) (Result, error) {
	if err := timebase.ValidateRates(recordingFPS, targetFPS); err != nil {
		return Result{}, err
	}

	// No upsampling: frames are never fabricated
	if len(keyframes) == 0 || targetFPS >= recordingFPS {
		return Result{Keyframes: keyframes}, nil
	}

	sorted := make([]scene.Keyframe, len(keyframes))
	copy(sorted, keyframes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	if len(sorted) < 2 {
		return Result{Keyframes: sorted}, nil
	}

	times := make([]float64, len(sorted))
	for i, kf := range sorted {
		times[i] = kf.Time
	}

	frameCount := FrameCount(sorted[len(sorted)-1].Time, recordingFPS, targetFPS)
	out := make([]scene.Keyframe, 0, frameCount)

	for frame := 0; frame < frameCount; frame++ {
		sourceTime := float64(frame) / targetFPS * recordingFPS
		out = append(out, sampleAt(sorted, times, sourceTime, float64(frame)))
	}

	return Result{Keyframes: out, Resampled: true}, nil
}

// FrameCount returns the number of target frames needed to cover [0, lastTime].
// A track that ends before time 0 covers no frames.
func FrameCount(lastTime, recordingFPS, targetFPS float64) int {
	durationSeconds := lastTime / recordingFPS
	count := int(math.Floor(durationSeconds*targetFPS)) + 1
	if count < 0 {
		return 0
	}
	return count
}

// sampleAt evaluates the track at sourceTime. sorted and times must be
// ordered by time and of equal length >= 1.
func sampleAt(sorted []scene.Keyframe, times []float64, sourceTime, frame float64) scene.Keyframe {
	// First keyframe strictly after sourceTime
	idx := sort.Search(len(times), func(i int) bool {
		return times[i] > sourceTime
	})

	switch {
	case idx == 0:
		return holdKeyframe(sorted[0], frame)
	case idx >= len(sorted):
		return holdKeyframe(sorted[len(sorted)-1], frame)
	}

	a, b := sorted[idx-1], sorted[idx]
	t := 0.0
	if dt := b.Time - a.Time; dt > 0 {
		t = (sourceTime - a.Time) / dt
	}

	return interpolateKeyframes(a, b, t, frame)
}
