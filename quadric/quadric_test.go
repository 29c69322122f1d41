package quadric_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/quadric"
)

const tol = 1e-9

// TestNew_RejectsInvalidRadii: construction must never yield an unbounded or
// degenerate ellipsoid.
func TestNew_RejectsInvalidRadii(t *testing.T) {
	pose := core.IdentityPose3()

	for _, radii := range []r3.Vector{
		{X: 0, Y: 1, Z: 1},
		{X: 1, Y: -2, Z: 1},
		{X: 1, Y: 1, Z: mathInf()},
	} {
		_, err := quadric.New(pose, radii)
		assert.ErrorIs(t, err, quadric.ErrInvalidRadii, "radii %v must be rejected", radii)
	}
}

// TestMatrix_OriginSphere: the dual matrix of a unit sphere at the origin is
// diag(1, 1, 1, −1).
func TestMatrix_OriginSphere(t *testing.T) {
	q, err := quadric.New(core.IdentityPose3(), r3.Vector{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)

	m := q.Matrix()
	want := [4]float64{1, 1, 1, -1}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expect := 0.0
			if i == j {
				expect = want[i]
			}
			assert.InDelta(t, expect, m.At(i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}

// TestMatrix_TranslatedEllipsoid: the closed-form block structure
// [rᵢ²-scaled top block − t·tᵀ | −t; −tᵀ | −1] for an axis-aligned ellipsoid.
func TestMatrix_TranslatedEllipsoid(t *testing.T) {
	tr := r3.Vector{X: 1, Y: -2, Z: 3}
	q, err := quadric.New(core.NewPose3(core.IdentityRot3(), tr), r3.Vector{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)

	m := q.Matrix()
	assert.InDelta(t, 1-tr.X*tr.X, m.At(0, 0), tol)
	assert.InDelta(t, 4-tr.Y*tr.Y, m.At(1, 1), tol)
	assert.InDelta(t, 9-tr.Z*tr.Z, m.At(2, 2), tol)
	assert.InDelta(t, -tr.X, m.At(0, 3), tol)
	assert.InDelta(t, -tr.Y, m.At(3, 1), tol, "matrix must be symmetric")
	assert.InDelta(t, -1, m.At(3, 3), tol)
}

// TestContains classifies camera centers against the ellipsoid.
func TestContains(t *testing.T) {
	q, err := quadric.New(core.IdentityPose3(), r3.Vector{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)

	inside := core.NewPose3(core.IdentityRot3(), r3.Vector{X: 0.5})
	outside := core.NewPose3(core.IdentityRot3(), r3.Vector{X: 5})
	surface := core.NewPose3(core.IdentityRot3(), r3.Vector{Y: 2})

	assert.True(t, q.Contains(inside), "point inside the ellipsoid")
	assert.False(t, q.Contains(outside), "point outside the ellipsoid")
	assert.True(t, q.Contains(surface), "surface points count as contained")
}

// TestIsBehind uses a camera looking down +z.
func TestIsBehind(t *testing.T) {
	camera := core.IdentityPose3() // at origin, optical axis +z

	ahead, err := quadric.New(core.NewPose3(core.IdentityRot3(), r3.Vector{Z: 10}), r3.Vector{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	behind, err := quadric.New(core.NewPose3(core.IdentityRot3(), r3.Vector{Z: -10}), r3.Vector{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)

	assert.False(t, ahead.IsBehind(camera))
	assert.True(t, behind.IsBehind(camera))
}

// TestRetract covers the 9-dof manifold: zero stays put, radii move
// additively, and leaving the valid radii region fails.
func TestRetract(t *testing.T) {
	q, err := quadric.New(core.IdentityPose3(), r3.Vector{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)

	same, err := q.Retract(make([]float64, quadric.Dim))
	require.NoError(t, err)
	assert.True(t, q.Equals(same, tol), "zero retraction is the identity")

	moved, err := q.Retract([]float64{0, 0, 0, 0, 0, 0, 0.5, 0, -1})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, moved.Radii().X, tol)
	assert.InDelta(t, 2.0, moved.Radii().Y, tol)
	assert.InDelta(t, 2.0, moved.Radii().Z, tol)

	_, err = q.Retract([]float64{0, 0, 0, 0, 0, 0, -1, 0, 0})
	assert.ErrorIs(t, err, quadric.ErrInvalidRadii, "retracting to a zero radius must fail")

	_, err = q.Retract([]float64{1, 2})
	assert.ErrorIs(t, err, core.ErrBadDimension)
}

func mathInf() float64 {
	return math.Inf(1)
}
