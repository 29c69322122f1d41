package camera

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/conic"
	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/quadric"
)

// ErrDegenerateProjection indicates a projected conic with non-finite
// entries, arising from singular camera/quadric configurations.
var ErrDegenerateProjection = errors.New("camera: projected conic has non-finite entries")

// ProjectionMatrix returns the fresh 3×4 camera matrix P = K·(X⁻¹)₃ₓ₄ that
// maps homogeneous world points into the image.
func ProjectionMatrix(pose core.Pose3, cal core.Calibration) *mat.Dense {
	xi := pose.Inverse().Matrix()
	var p mat.Dense
	p.Mul(cal.K(), xi.Slice(0, 3, 0, 4))
	return &p
}

// Project maps the quadric through the camera at pose into its silhouette
// dual conic C* = P·Q*·Pᵀ.
func Project(q quadric.Constrained, pose core.Pose3, cal core.Calibration) (conic.DualConic, error) {
	return projectThrough(ProjectionMatrix(pose, cal), q.Matrix())
}

func projectThrough(p *mat.Dense, qm *mat.Dense) (conic.DualConic, error) {
	var pq, c mat.Dense
	pq.Mul(p, qm)
	c.Mul(&pq, p.T())
	dc, err := conic.New(&c)
	if err != nil {
		return conic.DualConic{}, fmt.Errorf("%w: %v", ErrDegenerateProjection, err)
	}
	return dc, nil
}

// ProjectWithJacobians is Project plus the exact analytic derivatives of the
// projected conic: dCdx is ∂vec(C*)/∂pose (9×6, rotation coordinates first)
// and dCdq is ∂vec(C*)/∂quadric (9×9, pose coordinates then radii), both
// over the row-major conic vectorization.
func ProjectWithJacobians(q quadric.Constrained, pose core.Pose3, cal core.Calibration) (conic.DualConic, *mat.Dense, *mat.Dense, error) {
	p := ProjectionMatrix(pose, cal)
	qm := q.Matrix()
	dc, err := projectThrough(p, qm)
	if err != nil {
		return conic.DualConic{}, nil, nil, err
	}

	// Shared right factor Q*·Pᵀ of the product rule.
	var qpt mat.Dense
	qpt.Mul(qm, p.T())

	// ∂C*/∂pose: a right perturbation X·exp(δ) inverts to exp(−δ)·X⁻¹, so
	// ∂P/∂δᵢ = −K·(Gᵢ·X⁻¹)₃ₓ₄ for the se(3) generator Gᵢ.
	dCdx := mat.NewDense(conic.MatrixDim, core.PoseDim, nil)
	xi := pose.Inverse().Matrix()
	k := cal.K()
	for i := 0; i < core.PoseDim; i++ {
		var gxi, dp mat.Dense
		gxi.Mul(se3Generator(i), xi)
		dp.Mul(k, gxi.Slice(0, 3, 0, 4))
		dp.Scale(-1, &dp)
		setConicColumn(dCdx, i, productRule(&dp, &qpt, p, qm))
	}

	// ∂C*/∂quadric: C* is linear in Q*, so each column is P·(∂Q*/∂qⱼ)·Pᵀ.
	dCdq := mat.NewDense(conic.MatrixDim, quadric.Dim, nil)
	z := q.Pose().Matrix()
	radii := q.Radii()
	qhat := mat.NewDiagDense(4, []float64{
		radii.X * radii.X, radii.Y * radii.Y, radii.Z * radii.Z, -1,
	})
	for j := 0; j < quadric.Dim; j++ {
		var dq mat.Dense
		if j < core.PoseDim {
			// Pose direction: dZ = Z·Gⱼ, dQ* = dZ·Q̂·Zᵀ + Z·Q̂·dZᵀ.
			var dz, a, b mat.Dense
			dz.Mul(z, se3Generator(j))
			a.Mul(&dz, qhat)
			a.Mul(&a, z.T())
			b.Mul(z, qhat)
			b.Mul(&b, dz.T())
			dq.Add(&a, &b)
		} else {
			// Radius direction: dQ̂ has 2·r at one diagonal slot.
			dqhat := mat.NewDense(4, 4, nil)
			switch j {
			case 6:
				dqhat.Set(0, 0, 2*radii.X)
			case 7:
				dqhat.Set(1, 1, 2*radii.Y)
			case 8:
				dqhat.Set(2, 2, 2*radii.Z)
			}
			dq.Mul(z, dqhat)
			dq.Mul(&dq, z.T())
		}
		var pdq, dcj mat.Dense
		pdq.Mul(p, &dq)
		dcj.Mul(&pdq, p.T())
		setConicColumn(dCdq, j, &dcj)
	}

	return dc, dCdx, dCdq, nil
}

// productRule evaluates dC = dP·(Q*Pᵀ) + P·Q*·dPᵀ for one pose direction.
func productRule(dp, qpt, p, qm *mat.Dense) *mat.Dense {
	var a, b, pq mat.Dense
	a.Mul(dp, qpt)
	pq.Mul(p, qm)
	b.Mul(&pq, dp.T())
	a.Add(&a, &b)
	return &a
}

// setConicColumn writes the row-major vectorization of the 3×3 matrix m into
// column col of dst.
func setConicColumn(dst *mat.Dense, col int, m mat.Matrix) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst.Set(3*i+j, col, m.At(i, j))
		}
	}
}

// se3Generator returns the i-th 4×4 generator of a body-frame perturbation,
// rotation directions first: G₀..G₂ embed [eᵢ]ₓ, G₃..G₅ are unit
// translations.
func se3Generator(i int) *mat.Dense {
	g := mat.NewDense(4, 4, nil)
	switch i {
	case 0:
		g.Set(1, 2, -1)
		g.Set(2, 1, 1)
	case 1:
		g.Set(0, 2, 1)
		g.Set(2, 0, -1)
	case 2:
		g.Set(0, 1, -1)
		g.Set(1, 0, 1)
	default:
		g.Set(i-3, 3, 1)
	}
	return g
}
