// Package export maps resampled keyframes onto Blender's keyframe layout:
// integer frames on the target timeline and (w, x, y, z) quaternions.
package export

import (
	"github.com/ivlev/animconv/internal/resample"
	"github.com/ivlev/animconv/internal/scene"
	"github.com/ivlev/animconv/internal/timebase"
)

// WXYZ is a quaternion in Blender component order
type WXYZ [4]float64

// BlenderKeyframe is a keyframe ready for a Blender exporter
type BlenderKeyframe struct {
	Frame              int         `yaml:"frame"`
	Location           *scene.Vec3 `yaml:"location,omitempty"`
	RotationQuaternion *WXYZ       `yaml:"rotation_quaternion,omitempty"`
	Scale              *scene.Vec3 `yaml:"scale,omitempty"`
}

// Options controls conversion
type Options struct {
	RecordingFPS float64 // Rate of scene.Keyframe.Time
	TargetFPS    float64
	StartFrame   int
	Downsample   bool // Resample onto the target grid before mapping frames
}

// DefaultOptions matches a 1 kHz simulation recording exported at 30 FPS
func DefaultOptions() Options {
	return Options{
		RecordingFPS: 1000.0,
		TargetFPS:    30.0,
		StartFrame:   0,
		Downsample:   true,
	}
}

// QuatToBlender reorders (x, y, z, w) into (w, x, y, z)
func QuatToBlender(q scene.Quat) WXYZ {
	return WXYZ{q[3], q[0], q[1], q[2]}
}

// QuatFromBlender reorders (w, x, y, z) into (x, y, z, w)
func QuatFromBlender(q WXYZ) scene.Quat {
	return scene.Quat{q[1], q[2], q[3], q[0]}
}

// Convert turns one node's keyframes into Blender keyframes
func Convert(keyframes []scene.Keyframe, opts Options) ([]BlenderKeyframe, error) {
	if err := timebase.ValidateRates(opts.RecordingFPS, opts.TargetFPS); err != nil {
		return nil, err
	}
	if len(keyframes) == 0 {
		return []BlenderKeyframe{}, nil
	}

	processed := keyframes
	retimed := false
	if opts.Downsample {
		res, err := resample.Resample(keyframes, opts.RecordingFPS, opts.TargetFPS)
		if err != nil {
			return nil, err
		}
		processed, retimed = res.Keyframes, res.Resampled
	}

	out := make([]BlenderKeyframe, 0, len(processed))
	for _, kf := range processed {
		var frame int
		if retimed {
			// Time is already a target frame index
			frame = opts.StartFrame + timebase.Round(kf.Time)
		} else {
			f, err := timebase.TimeToFrame(kf.Time, opts.RecordingFPS, opts.TargetFPS, opts.StartFrame)
			if err != nil {
				return nil, err
			}
			frame = f
		}

		bk := BlenderKeyframe{
			Frame:    frame,
			Location: kf.Position.Clone(),
			Scale:    kf.Scale.Clone(),
		}
		if kf.Rotation != nil {
			rot := QuatToBlender(*kf.Rotation)
			bk.RotationQuaternion = &rot
		}
		out = append(out, bk)
	}

	return out, nil
}

// AnimationRange returns the first and last target frame spanned by the
// keyframes of all nodes. The range always starts at opts.StartFrame.
func AnimationRange(nodes []*scene.Node, opts Options) (int, int, error) {
	if err := timebase.ValidateRates(opts.RecordingFPS, opts.TargetFPS); err != nil {
		return 0, 0, err
	}

	maxTime := 0.0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		for _, kf := range node.Keyframes {
			if kf.Time > maxTime {
				maxTime = kf.Time
			}
		}
	}

	durationSeconds := maxTime / opts.RecordingFPS
	return opts.StartFrame, opts.StartFrame + timebase.Round(durationSeconds*opts.TargetFPS), nil
}
