package resample

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/animconv/internal/scene"
)

// interpolateKeyframes blends the channels of a and b at factor t. time is
// the timestamp of the produced keyframe.
func interpolateKeyframes(a, b scene.Keyframe, t, time float64) scene.Keyframe {
	return scene.Keyframe{
		Time:     time,
		Position: lerpVec3(a.Position, b.Position, t),
		Rotation: nlerpQuat(a.Rotation, b.Rotation, t),
		Scale:    lerpVec3(a.Scale, b.Scale, t),
	}
}

// holdKeyframe repeats the channels of kf at a new timestamp
func holdKeyframe(kf scene.Keyframe, time float64) scene.Keyframe {
	return scene.Keyframe{
		Time:     time,
		Position: kf.Position.Clone(),
		Rotation: kf.Rotation.Clone(),
		Scale:    kf.Scale.Clone(),
	}
}

// lerpVec3 performs component-wise linear interpolation. If only one side
// carries the channel, that side is used as is.
func lerpVec3(a, b *scene.Vec3, t float64) *scene.Vec3 {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b.Clone()
	case b == nil:
		return a.Clone()
	}

	va, vb := mgl64.Vec3(*a), mgl64.Vec3(*b)
	out := scene.Vec3(va.Add(vb.Sub(va).Mul(t)))
	return &out
}

// nlerpQuat performs normalized linear interpolation along the shorter arc
func nlerpQuat(a, b *scene.Quat, t float64) *scene.Quat {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b.Clone()
	case b == nil:
		return a.Clone()
	}

	qa, qb := toMGL(*a), toMGL(*b)

	// q and -q encode the same rotation
	if qa.Dot(qb) < 0 {
		qb = qb.Scale(-1)
	}

	q := qa.Add(qb.Sub(qa).Scale(t))

	// mgl64.Quat.Normalize snaps a zero quaternion to identity; keep it instead
	if length := q.Len(); length > 0 {
		q = q.Scale(1 / length)
	}

	out := fromMGL(q)
	return &out
}

func toMGL(q scene.Quat) mgl64.Quat {
	return mgl64.Quat{W: q[3], V: mgl64.Vec3{q[0], q[1], q[2]}}
}

func fromMGL(q mgl64.Quat) scene.Quat {
	return scene.Quat{q.V[0], q.V[1], q.V[2], q.W}
}
