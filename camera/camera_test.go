package camera_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadrics/camera"
	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/quadric"
)

const (
	tol   = 1e-9
	fdTol = 1e-4
)

func testCalibration(t *testing.T) core.Calibration {
	t.Helper()
	cal, err := core.NewCalibration(525, 525, 0, 320, 240)
	require.NoError(t, err)
	return cal
}

// TestProjectionMatrix_IdentityPose: with the camera at the origin P must be
// K·[I | 0].
func TestProjectionMatrix_IdentityPose(t *testing.T) {
	cal := testCalibration(t)

	p := camera.ProjectionMatrix(core.IdentityPose3(), cal)
	r, c := p.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)

	k := cal.K()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, k.At(i, j), p.At(i, j), tol, "entry (%d,%d)", i, j)
		}
		assert.InDelta(t, 0, p.At(i, 3), tol, "last column is zero for identity pose")
	}
}

// TestProject_OnAxisSphere: a unit sphere 10 units down the optical axis
// projects to a circle with the hand-computed symmetric box
// center ± fx/√(d²−r²).
func TestProject_OnAxisSphere(t *testing.T) {
	cal := testCalibration(t)
	q, err := quadric.New(core.NewPose3(core.IdentityRot3(), r3.Vector{Z: 10}), r3.Vector{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)

	dc, err := camera.Project(q, core.IdentityPose3(), cal)
	require.NoError(t, err)
	assert.False(t, dc.IsDegenerate(), "well-posed projection is non-degenerate")
	assert.True(t, dc.IsEllipse(), "sphere silhouette is an ellipse")

	box, err := dc.Bounds()
	require.NoError(t, err)

	halfExtent := 525.0 / math.Sqrt(99)
	want := core.NewAlignedBox2(320-halfExtent, 240-halfExtent, 320+halfExtent, 240+halfExtent)
	assert.True(t, box.Equals(want, 1e-6), "got %v want %v", box, want)
}

// TestProject_LookAtMatchesIdentity: the same relative geometry expressed
// through a look-at pose must give the same silhouette, up to conic scale.
func TestProject_LookAtMatchesIdentity(t *testing.T) {
	cal := testCalibration(t)
	sphere := r3.Vector{X: 1, Y: 1, Z: 1}

	qa, err := quadric.New(core.NewPose3(core.IdentityRot3(), r3.Vector{Z: 10}), sphere)
	require.NoError(t, err)
	ca, err := camera.Project(qa, core.IdentityPose3(), cal)
	require.NoError(t, err)

	qb, err := quadric.New(core.IdentityPose3(), sphere)
	require.NoError(t, err)
	pose := core.LookAt(r3.Vector{X: 10}, r3.Vector{}, r3.Vector{Z: 1})
	cb, err := camera.Project(qb, pose, cal)
	require.NoError(t, err)

	assert.True(t, ca.Equals(cb, 1e-3), "equivalent geometry must project equally")
}

// TestProjectWithJacobians_MatchesNumerical validates the analytic 9×6 and
// 9×9 derivatives against the central-difference path over several
// well-posed configurations.
func TestProjectWithJacobians_MatchesNumerical(t *testing.T) {
	cal := testCalibration(t)
	cases := []struct {
		name  string
		pose  core.Pose3
		qpose core.Pose3
		radii r3.Vector
	}{
		{
			"ring camera, origin ellipsoid",
			core.LookAt(r3.Vector{X: 10}, r3.Vector{}, r3.Vector{Z: 1}),
			core.IdentityPose3(),
			r3.Vector{X: 1, Y: 2, Z: 3},
		},
		{
			"offset camera, offset rotated ellipsoid",
			core.LookAt(r3.Vector{X: 3, Y: -8, Z: 2}, r3.Vector{X: 0.5, Y: 0.5}, r3.Vector{Z: 1}),
			core.NewPose3(core.Rodrigues(r3.Vector{X: 0.4, Z: -0.2}), r3.Vector{X: 0.5, Y: 0.5}),
			r3.Vector{X: 0.8, Y: 1.5, Z: 0.6},
		},
		{
			"near camera, small sphere",
			core.LookAt(r3.Vector{Y: 4}, r3.Vector{}, r3.Vector{Z: 1}),
			core.NewPose3(core.Rodrigues(r3.Vector{Y: 1.0}), r3.Vector{Z: 0.3}),
			r3.Vector{X: 0.5, Y: 0.5, Z: 0.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := quadric.New(tc.qpose, tc.radii)
			require.NoError(t, err)

			_, dCdx, dCdq, err := camera.ProjectWithJacobians(q, tc.pose, cal)
			require.NoError(t, err)
			nCdx, nCdq, err := camera.NumericalProjectionJacobians(q, tc.pose, cal)
			require.NoError(t, err)

			assertMatrixNear(t, nCdx, dCdx, "dC/dpose")
			assertMatrixNear(t, nCdq, dCdq, "dC/dquadric")
		})
	}
}

// assertMatrixNear compares entrywise with a relative-absolute mix so large
// conic entries do not dominate the tolerance.
func assertMatrixNear(t *testing.T, want, got interface {
	Dims() (int, int)
	At(int, int) float64
}, label string) {
	t.Helper()
	r, c := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, r, gr, "%s rows", label)
	require.Equal(t, c, gc, "%s cols", label)

	scale := 1.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			scale = math.Max(scale, math.Abs(want.At(i, j)))
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), fdTol*scale, "%s entry (%d,%d)", label, i, j)
		}
	}
}
