package factor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/camera"
	"github.com/katalvlaran/quadrics/conic"
	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/quadric"
)

// BoundingBox is the observation factor tying one camera pose and one
// quadric landmark to a measured axis-aligned bounding box.
//
// The zero value is not usable; construct with New.
type BoundingBox struct {
	measured    core.AlignedBox2
	calibration core.Calibration
	noise       DiagonalNoise
	poseKey     Key
	quadricKey  Key
	opts        Options
}

// New builds a bounding-box factor over the given pose and quadric keys.
func New(measured core.AlignedBox2, cal core.Calibration, noise DiagonalNoise,
	poseKey, quadricKey Key, opts Options) BoundingBox {
	return BoundingBox{
		measured:    measured,
		calibration: cal,
		noise:       noise,
		poseKey:     poseKey,
		quadricKey:  quadricKey,
		opts:        opts,
	}
}

// Measured returns the observed bounding box.
func (f BoundingBox) Measured() core.AlignedBox2 { return f.measured }

// Calibration returns the camera intrinsics the factor projects with.
func (f BoundingBox) Calibration() core.Calibration { return f.calibration }

// Noise returns the attached noise model.
func (f BoundingBox) Noise() DiagonalNoise { return f.noise }

// PoseKey returns the camera-pose variable key.
func (f BoundingBox) PoseKey() Key { return f.poseKey }

// QuadricKey returns the quadric variable key.
func (f BoundingBox) QuadricKey() Key { return f.quadricKey }

// Options returns the factor configuration.
func (f BoundingBox) Options() Options { return f.opts }

// sentinel returns the constant degenerate-geometry residual.
func sentinel() [core.BoxDim]float64 {
	return [core.BoxDim]float64{
		SentinelResidual, SentinelResidual, SentinelResidual, SentinelResidual,
	}
}

// Evaluate returns the residual predicted−measured in box order
// (xmin, ymin, xmax, ymax). Degenerate geometry yields the sentinel
// residual; Evaluate never fails.
func (f BoundingBox) Evaluate(pose core.Pose3, q quadric.Constrained) [core.BoxDim]float64 {
	res, _, _ := f.evaluate(pose, q, false)
	return res
}

// EvaluateWithJacobians returns the residual together with its Jacobians
// with respect to the pose (4×6) and the quadric (4×9), both over the
// local retraction coordinates. On degenerate geometry the residual is the
// sentinel and both Jacobians are zero.
func (f BoundingBox) EvaluateWithJacobians(pose core.Pose3, q quadric.Constrained) ([core.BoxDim]float64, *mat.Dense, *mat.Dense) {
	return f.evaluate(pose, q, true)
}

// EvaluateH1 returns the 4×6 pose Jacobian alone.
func (f BoundingBox) EvaluateH1(pose core.Pose3, q quadric.Constrained) *mat.Dense {
	_, h1, _ := f.evaluate(pose, q, true)
	return h1
}

// EvaluateH2 returns the 4×9 quadric Jacobian alone.
func (f BoundingBox) EvaluateH2(pose core.Pose3, q quadric.Constrained) *mat.Dense {
	_, _, h2 := f.evaluate(pose, q, true)
	return h2
}

// EvaluateFromValues resolves the factor's keys in v and evaluates.
// A missing or mistyped key counts as degenerate and yields the sentinel.
func (f BoundingBox) EvaluateFromValues(v *Values) [core.BoxDim]float64 {
	pose, err := v.PoseAt(f.poseKey)
	if err != nil {
		return sentinel()
	}
	q, err := v.QuadricAt(f.quadricKey)
	if err != nil {
		return sentinel()
	}
	return f.Evaluate(pose, q)
}

// EvaluateWithJacobiansFromValues resolves the factor's keys in v and
// evaluates with Jacobians.
func (f BoundingBox) EvaluateWithJacobiansFromValues(v *Values) ([core.BoxDim]float64, *mat.Dense, *mat.Dense) {
	pose, err := v.PoseAt(f.poseKey)
	if err != nil {
		return sentinel(), mat.NewDense(core.BoxDim, core.PoseDim, nil), mat.NewDense(core.BoxDim, quadric.Dim, nil)
	}
	q, err := v.QuadricAt(f.quadricKey)
	if err != nil {
		return sentinel(), mat.NewDense(core.BoxDim, core.PoseDim, nil), mat.NewDense(core.BoxDim, quadric.Dim, nil)
	}
	return f.EvaluateWithJacobians(pose, q)
}

// evaluate is the single evaluation path. withJacobians selects whether the
// analytic chain rule runs; without it the box extraction skips Jacobian
// assembly. The returned Jacobians are non-nil iff withJacobians is true.
func (f BoundingBox) evaluate(pose core.Pose3, q quadric.Constrained, withJacobians bool) ([core.BoxDim]float64, *mat.Dense, *mat.Dense) {
	degenerate := func() ([core.BoxDim]float64, *mat.Dense, *mat.Dense) {
		if !withJacobians {
			return sentinel(), nil, nil
		}
		return sentinel(), mat.NewDense(core.BoxDim, core.PoseDim, nil), mat.NewDense(core.BoxDim, quadric.Dim, nil)
	}

	if f.opts.Validation == ValidationStrict {
		if q.IsBehind(pose) || q.Contains(pose) {
			return degenerate()
		}
	}

	var (
		c          conic.DualConic
		dCdx, dCdq *mat.Dense
		err        error
	)
	if withJacobians {
		c, dCdx, dCdq, err = camera.ProjectWithJacobians(q, pose, f.calibration)
	} else {
		c, err = camera.Project(q, pose, f.calibration)
	}
	if err != nil {
		return degenerate()
	}

	if f.opts.Validation == ValidationStrict && !c.IsEllipse() {
		return degenerate()
	}

	var (
		predicted core.AlignedBox2
		dbdC      *mat.Dense
	)
	switch {
	case withJacobians && f.opts.Model == Complex:
		predicted, dbdC, err = c.SmartBoundsJacobian(f.calibration)
	case withJacobians:
		predicted, dbdC, err = c.BoundsJacobian()
	case f.opts.Model == Complex:
		predicted, err = c.SmartBounds(f.calibration)
	default:
		predicted, err = c.Bounds()
	}
	if err != nil {
		return degenerate()
	}

	var res [core.BoxDim]float64
	pv := predicted.Vector()
	mv := f.measured.Vector()
	for i := range res {
		res[i] = pv[i] - mv[i]
	}
	if !withJacobians {
		return res, nil, nil
	}

	h1 := mat.NewDense(core.BoxDim, core.PoseDim, nil)
	h2 := mat.NewDense(core.BoxDim, quadric.Dim, nil)
	h1.Mul(dbdC, dCdx)
	h2.Mul(dbdC, dCdq)
	return res, h1, h2
}

// Equals reports whether both factors observe the same box with the same
// calibration, noise, keys and configuration, within tol on the numeric
// fields.
func (f BoundingBox) Equals(other BoundingBox, tol float64) bool {
	return f.measured.Equals(other.measured, tol) &&
		f.calibration.Equals(other.calibration, tol) &&
		f.noise.Equals(other.noise, tol) &&
		f.poseKey == other.poseKey &&
		f.quadricKey == other.quadricKey &&
		f.opts == other.opts
}

// String renders the factor for debugging output.
func (f BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox(pose=%d, quadric=%d, model=%s, validation=%s, measured=%s, noise=%s)",
		f.poseKey, f.quadricKey, f.opts.Model, f.opts.Validation, f.measured, f.noise)
}
