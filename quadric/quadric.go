package quadric

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/core"
)

// Dim is the dimension of the quadric's local parameterization: 6 pose + 3
// radii, pose coordinates first.
const Dim = 9

// Sentinel errors for quadric construction and local-coordinate operations.
var (
	// ErrInvalidRadii indicates radii that are not strictly positive finite values.
	ErrInvalidRadii = errors.New("quadric: radii must be strictly positive and finite")
)

// Constrained is a bounded ellipsoid in dual form, parameterized by a rigid
// pose and three semi-axis radii. Immutable value type.
type Constrained struct {
	pose  core.Pose3
	radii r3.Vector
}

// New validates the radii and builds a constrained dual quadric centered at
// the pose origin with semi-axes (radii.X, radii.Y, radii.Z) along the pose
// axes.
func New(pose core.Pose3, radii r3.Vector) (Constrained, error) {
	for _, r := range [...]float64{radii.X, radii.Y, radii.Z} {
		if !(r > 0) || math.IsInf(r, 0) {
			return Constrained{}, ErrInvalidRadii
		}
	}
	return Constrained{pose: pose, radii: radii}, nil
}

// Pose returns the quadric's pose.
func (q Constrained) Pose() core.Pose3 { return q.pose }

// Radii returns the three semi-axis radii.
func (q Constrained) Radii() r3.Vector { return q.radii }

// Centroid returns the ellipsoid center in world coordinates.
func (q Constrained) Centroid() r3.Vector { return q.pose.Translation() }

// Matrix returns the fresh 4×4 dual-quadric matrix
// Q* = Z·diag(r₁², r₂², r₃², −1)·Zᵀ.
func (q Constrained) Matrix() *mat.Dense {
	z := q.pose.Matrix()
	d := mat.NewDiagDense(4, []float64{
		q.radii.X * q.radii.X,
		q.radii.Y * q.radii.Y,
		q.radii.Z * q.radii.Z,
		-1,
	})
	var zd, out mat.Dense
	zd.Mul(z, d)
	out.Mul(&zd, z.T())
	return &out
}

// Contains reports whether the camera center lies inside (or on) the
// ellipsoid. Evaluated on the primal quadric, built directly from pose and
// radii so no matrix inversion is needed.
func (q Constrained) Contains(cameraPose core.Pose3) bool {
	// Camera center in the quadric frame; inside iff Σ (pᵢ/rᵢ)² ≤ 1.
	p := q.pose.TransformTo(cameraPose.Translation())
	v := p.X*p.X/(q.radii.X*q.radii.X) +
		p.Y*p.Y/(q.radii.Y*q.radii.Y) +
		p.Z*p.Z/(q.radii.Z*q.radii.Z)
	return v <= 1
}

// IsBehind reports whether the quadric centroid has negative depth in the
// camera frame.
func (q Constrained) IsBehind(cameraPose core.Pose3) bool {
	return cameraPose.TransformTo(q.Centroid()).Z < 0
}

// Retract moves along the 9-dimensional manifold: the first six coordinates
// retract the pose, the last three add to the radii. Radii that would leave
// the valid region fail with ErrInvalidRadii.
func (q Constrained) Retract(delta []float64) (Constrained, error) {
	if len(delta) != Dim {
		return Constrained{}, fmt.Errorf("retract: got %d coordinates: %w", len(delta), core.ErrBadDimension)
	}
	pose, err := q.pose.Retract(delta[:core.PoseDim])
	if err != nil {
		return Constrained{}, err
	}
	radii := q.radii.Add(r3.Vector{X: delta[6], Y: delta[7], Z: delta[8]})
	return New(pose, radii)
}

// Equals reports pose and radii equality within tol.
func (q Constrained) Equals(o Constrained, tol float64) bool {
	return q.pose.Equals(o.pose, tol) &&
		math.Abs(q.radii.X-o.radii.X) <= tol &&
		math.Abs(q.radii.Y-o.radii.Y) <= tol &&
		math.Abs(q.radii.Z-o.radii.Z) <= tol
}

// String renders the quadric for diagnostics.
func (q Constrained) String() string {
	return fmt.Sprintf("ConstrainedDualQuadric(%v radii=[%g %g %g])",
		q.pose, q.radii.X, q.radii.Y, q.radii.Z)
}
