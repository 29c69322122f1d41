package core_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadrics/core"
)

const tol = 1e-9

// TestRodrigues_QuarterTurn verifies the closed-form exponential against a
// hand-computed quarter turn about z.
func TestRodrigues_QuarterTurn(t *testing.T) {
	r := core.Rodrigues(r3.Vector{Z: math.Pi / 2})

	got := r.Rotate(r3.Vector{X: 1})
	assert.InDelta(t, 0, got.X, tol, "x maps onto y under a quarter turn")
	assert.InDelta(t, 1, got.Y, tol, "x maps onto y under a quarter turn")
	assert.InDelta(t, 0, got.Z, tol, "rotation about z keeps z")
}

// TestRodrigues_SmallAngle checks the Taylor branch stays orthonormal.
func TestRodrigues_SmallAngle(t *testing.T) {
	r := core.Rodrigues(r3.Vector{X: 1e-8, Y: -2e-8})

	rt := r.Compose(r.Inverse())
	assert.True(t, rt.Equals(core.IdentityRot3(), tol), "R·Rᵀ must be identity")
}

// TestPose3_ComposeInverse verifies group laws on a nontrivial pose.
func TestPose3_ComposeInverse(t *testing.T) {
	p := core.NewPose3(core.Rodrigues(r3.Vector{X: 0.3, Y: -0.2, Z: 0.9}), r3.Vector{X: 1, Y: 2, Z: 3})

	id := p.Compose(p.Inverse())
	assert.True(t, id.Equals(core.IdentityPose3(), tol), "p·p⁻¹ must be identity")

	q := core.NewPose3(core.Rodrigues(r3.Vector{Z: 0.5}), r3.Vector{X: -1})
	assert.True(t, p.Compose(p.Between(q)).Equals(q, tol), "p·(p⁻¹q) must equal q")
}

// TestPose3_TransformTo maps a world point into the camera frame.
func TestPose3_TransformTo(t *testing.T) {
	p := core.NewPose3(core.IdentityRot3(), r3.Vector{X: 1, Y: 1, Z: 1})

	local := p.TransformTo(r3.Vector{X: 2, Y: 1, Z: 1})
	assert.InDelta(t, 1, local.X, tol, "translation removed")
	assert.InDelta(t, 0, local.Y, tol)
	assert.InDelta(t, 0, local.Z, tol)
}

// TestPose3_RetractZero is the identity retraction.
func TestPose3_RetractZero(t *testing.T) {
	p := core.NewPose3(core.Rodrigues(r3.Vector{Y: 0.4}), r3.Vector{Z: 2})

	q, err := p.Retract(make([]float64, core.PoseDim))
	require.NoError(t, err, "zero perturbation must retract")
	assert.True(t, p.Equals(q, tol), "retracting zero must not move the pose")
}

// TestPose3_RetractBadLength rejects wrong-sized perturbations.
func TestPose3_RetractBadLength(t *testing.T) {
	_, err := core.IdentityPose3().Retract([]float64{1, 2, 3})
	assert.ErrorIs(t, err, core.ErrBadDimension, "length-3 delta must be rejected")
}

// TestLookAt_FacesTarget checks the camera z-axis points at the target and
// the translation is the eye position.
func TestLookAt_FacesTarget(t *testing.T) {
	eye := r3.Vector{X: 10}
	p := core.LookAt(eye, r3.Vector{}, r3.Vector{Z: 1})

	assert.InDelta(t, eye.X, p.Translation().X, tol, "translation is the eye")

	// Optical axis: third rotation column expressed in world coordinates.
	z := p.Rotation().Rotate(r3.Vector{Z: 1})
	assert.InDelta(t, -1, z.X, tol, "camera looks from +x toward the origin")
	assert.InDelta(t, 0, z.Y, tol)
	assert.InDelta(t, 0, z.Z, tol)

	// Points on the optical axis land at depth |eye|.
	local := p.TransformTo(r3.Vector{})
	assert.InDelta(t, 10, local.Z, tol, "target depth must be the eye distance")
	assert.InDelta(t, 0, local.X, tol)
	assert.InDelta(t, 0, local.Y, tol)
}
