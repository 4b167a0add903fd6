package scene

import "fmt"

// Vec3 is an x, y, z triple used for position and scale channels
type Vec3 [3]float64

// Quat is a unit quaternion stored as (x, y, z, w)
type Quat [4]float64

// Recording represents a captured animation: a set of nodes sampled at RecordingFPS
type Recording struct {
	Version      string  `yaml:"version"`
	RecordingFPS float64 `yaml:"recording_fps,omitempty"` // Samples per second of Keyframe.Time
	Nodes        []*Node `yaml:"nodes"`
}

// Node is one animated object of the scene graph
type Node struct {
	Path      string     `yaml:"path"`
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Keyframe is a sample of one or more channels. A nil channel is absent,
// which is not the same thing as a zero value.
type Keyframe struct {
	Time     float64 `yaml:"time"` // Source sample units, not seconds
	Position *Vec3   `yaml:"position,omitempty"`
	Rotation *Quat   `yaml:"rotation,omitempty"`
	Scale    *Vec3   `yaml:"scale,omitempty"`
}

// Validate checks that every node can be addressed in the output document
func (r *Recording) Validate() error {
	seen := make(map[string]struct{}, len(r.Nodes))
	for i, n := range r.Nodes {
		if n == nil {
			return fmt.Errorf("node %d is empty", i)
		}
		if n.Path == "" {
			return fmt.Errorf("node %d has no path", i)
		}
		if _, dup := seen[n.Path]; dup {
			return fmt.Errorf("duplicate node path %q", n.Path)
		}
		seen[n.Path] = struct{}{}
	}
	return nil
}

// KeyframeCount returns the total number of keyframes across all nodes
func (r *Recording) KeyframeCount() int {
	total := 0
	for _, n := range r.Nodes {
		if n != nil {
			total += len(n.Keyframes)
		}
	}
	return total
}

// Clone returns a copy of v, or nil
func (v *Vec3) Clone() *Vec3 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Clone returns a copy of q, or nil
func (q *Quat) Clone() *Quat {
	if q == nil {
		return nil
	}
	c := *q
	return &c
}
