package core

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// PoseDim is the dimension of the SE(3) local coordinates: 3 rotation + 3
// translation, rotation first.
const PoseDim = 6

// Pose3 is a rigid transform (rotation + translation), read as local-to-world.
// The zero value is not valid; use IdentityPose3 or NewPose3.
type Pose3 struct {
	rot Rot3
	t   r3.Vector
}

// IdentityPose3 returns the identity pose.
func IdentityPose3() Pose3 {
	return Pose3{rot: IdentityRot3()}
}

// NewPose3 builds a pose from a rotation and a translation.
func NewPose3(rot Rot3, t r3.Vector) Pose3 {
	return Pose3{rot: rot, t: t}
}

// LookAt returns the pose of a camera at eye facing target, with image rows
// roughly aligned to up: camera z points at the target, x is right, y is
// down. Mirrors the look-at construction used to generate camera rings.
func LookAt(eye, target, up r3.Vector) Pose3 {
	zc := target.Sub(eye).Normalize()
	xc := zc.Cross(up).Normalize()
	yc := zc.Cross(xc)
	return Pose3{
		rot: NewRot3([9]float64{
			xc.X, yc.X, zc.X,
			xc.Y, yc.Y, zc.Y,
			xc.Z, yc.Z, zc.Z,
		}),
		t: eye,
	}
}

// Rotation returns the rotation part.
func (p Pose3) Rotation() Rot3 { return p.rot }

// Translation returns the translation part.
func (p Pose3) Translation() r3.Vector { return p.t }

// Matrix returns the fresh 4×4 homogeneous matrix [R t; 0 1].
func (p Pose3) Matrix() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, p.rot.At(i, j))
		}
	}
	m.Set(0, 3, p.t.X)
	m.Set(1, 3, p.t.Y)
	m.Set(2, 3, p.t.Z)
	m.Set(3, 3, 1)
	return m
}

// Compose returns p·q.
func (p Pose3) Compose(q Pose3) Pose3 {
	return Pose3{
		rot: p.rot.Compose(q.rot),
		t:   p.t.Add(p.rot.Rotate(q.t)),
	}
}

// Inverse returns p⁻¹.
func (p Pose3) Inverse() Pose3 {
	ri := p.rot.Inverse()
	return Pose3{rot: ri, t: ri.Rotate(p.t).Mul(-1)}
}

// Between returns p⁻¹·q: q expressed in the frame of p.
func (p Pose3) Between(q Pose3) Pose3 {
	return p.Inverse().Compose(q)
}

// TransformTo maps a world point into the local (camera) frame.
func (p Pose3) TransformTo(world r3.Vector) r3.Vector {
	return p.rot.Unrotate(world.Sub(p.t))
}

// Retract composes the exponential of the 6-vector delta = (ω, v) on the
// right: p·exp(δ). Rotation coordinates come first.
func (p Pose3) Retract(delta []float64) (Pose3, error) {
	if len(delta) != PoseDim {
		return Pose3{}, fmt.Errorf("retract: got %d coordinates: %w", len(delta), ErrBadDimension)
	}
	w := r3.Vector{X: delta[0], Y: delta[1], Z: delta[2]}
	v := r3.Vector{X: delta[3], Y: delta[4], Z: delta[5]}
	return p.Compose(expSE3(w, v)), nil
}

// expSE3 is the SE(3) exponential: rotation by Rodrigues, translation through
// the left Jacobian of SO(3).
func expSE3(w, v r3.Vector) Pose3 {
	theta2 := w.X*w.X + w.Y*w.Y + w.Z*w.Z
	var b, c float64
	if theta2 < rodriguesTaylorSwitch {
		b = 0.5 - theta2/24
		c = 1.0/6 - theta2/120
	} else {
		theta := math.Sqrt(theta2)
		b = (1 - math.Cos(theta)) / theta2
		c = (theta - math.Sin(theta)) / (theta2 * theta)
	}
	// t = (I + b·K + c·K²)·v with K = [ω]ₓ.
	kv := w.Cross(v)
	kkv := w.Cross(kv)
	t := v.Add(kv.Mul(b)).Add(kkv.Mul(c))
	return Pose3{rot: Rodrigues(w), t: t}
}

// Equals reports rotation and translation equality within tol.
func (p Pose3) Equals(q Pose3, tol float64) bool {
	return p.rot.Equals(q.rot, tol) &&
		math.Abs(p.t.X-q.t.X) <= tol &&
		math.Abs(p.t.Y-q.t.Y) <= tol &&
		math.Abs(p.t.Z-q.t.Z) <= tol
}

// String renders the pose for diagnostics.
func (p Pose3) String() string {
	return fmt.Sprintf("Pose3(R=%v t=[%.6g %.6g %.6g])", p.rot.m, p.t.X, p.t.Y, p.t.Z)
}
