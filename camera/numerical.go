package camera

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/conic"
	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/quadric"
)

// NumericalProjectionJacobians computes ∂vec(C*)/∂pose (9×6) and
// ∂vec(C*)/∂quadric (9×9) by central finite differences over the same local
// coordinates the analytic path differentiates. It serves as the validation
// and fallback path; on well-posed geometry it agrees with
// ProjectWithJacobians to numeric tolerance.
func NumericalProjectionJacobians(q quadric.Constrained, pose core.Pose3, cal core.Calibration) (*mat.Dense, *mat.Dense, error) {
	var evalErr error
	record := func(err error) {
		if err != nil && evalErr == nil {
			evalErr = err
		}
	}
	settings := &fd.JacobianSettings{Formula: fd.Central, Step: core.DefaultFDStep}

	dCdx := mat.NewDense(conic.MatrixDim, core.PoseDim, nil)
	fd.Jacobian(dCdx, func(y, delta []float64) {
		perturbed, err := pose.Retract(delta)
		record(err)
		dc, err := Project(q, perturbed, cal)
		record(err)
		copy(y, dc.Vector())
	}, make([]float64, core.PoseDim), settings)

	dCdq := mat.NewDense(conic.MatrixDim, quadric.Dim, nil)
	fd.Jacobian(dCdq, func(y, delta []float64) {
		perturbed, err := q.Retract(delta)
		record(err)
		dc, err := Project(perturbed, pose, cal)
		record(err)
		copy(y, dc.Vector())
	}, make([]float64, quadric.Dim), settings)

	if evalErr != nil {
		return nil, nil, evalErr
	}
	return dCdx, dCdq, nil
}
