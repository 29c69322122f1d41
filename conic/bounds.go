package conic

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/core"
)

// Bounds returns the axis-aligned bounding box of the conic's envelope using
// the dual-conic tangent-line formula: for each image axis the two extreme
// tangent lines are the roots of a quadratic in the diagonal cofactors,
//
//	x = (c02 ± √(c02² − c22·c00)) / c22
//	y = (c12 ± √(c12² − c22·c11)) / c22
//
// The root signs follow the reference convention (no reordering), so the
// output is smooth in the conic entries. A conic whose (2,2) entry vanishes
// yields ErrDegenerate; a negative discriminant (no real tangent lines)
// yields ErrNotEllipse.
func (c DualConic) Bounds() (core.AlignedBox2, error) {
	box, _, err := c.bounds(false)
	return box, err
}

// BoundsJacobian is Bounds plus the exact 4×9 Jacobian of the box
// (xmin, ymin, xmax, ymax) with respect to the row-major conic entries.
// Only the five entries the cofactor formula reads — c00, c02, c11, c12,
// c22 — carry nonzero columns.
func (c DualConic) BoundsJacobian() (core.AlignedBox2, *mat.Dense, error) {
	return c.bounds(true)
}

func (c DualConic) bounds(withJacobian bool) (core.AlignedBox2, *mat.Dense, error) {
	c00, c02, c11, c12, c22 := c.m[0], c.m[2], c.m[4], c.m[5], c.m[8]
	if c22 > -DefaultDegeneracyTol && c22 < DefaultDegeneracyTol {
		return core.AlignedBox2{}, nil, ErrDegenerate
	}

	discX := c02*c02 - c22*c00
	discY := c12*c12 - c22*c11
	if discX <= 0 || discY <= 0 {
		return core.AlignedBox2{}, nil, ErrNotEllipse
	}
	sx := math.Sqrt(discX)
	sy := math.Sqrt(discY)

	box := core.AlignedBox2{
		XMin: (c02 + sx) / c22,
		YMin: (c12 + sy) / c22,
		XMax: (c02 - sx) / c22,
		YMax: (c12 - sy) / c22,
	}
	if !withJacobian {
		return box, nil, nil
	}

	// Rows follow the residual order (xmin, ymin, xmax, ymax); columns are
	// the row-major entries c00..c22.
	j := mat.NewDense(core.BoxDim, MatrixDim, nil)

	// xmin = (c02 + sx)/c22
	j.Set(0, 0, -1/(2*sx))
	j.Set(0, 2, (1+c02/sx)/c22)
	j.Set(0, 8, -c00/(2*sx*c22)-(c02+sx)/(c22*c22))
	// ymin = (c12 + sy)/c22
	j.Set(1, 4, -1/(2*sy))
	j.Set(1, 5, (1+c12/sy)/c22)
	j.Set(1, 8, -c11/(2*sy*c22)-(c12+sy)/(c22*c22))
	// xmax = (c02 − sx)/c22
	j.Set(2, 0, 1/(2*sx))
	j.Set(2, 2, (1-c02/sx)/c22)
	j.Set(2, 8, c00/(2*sx*c22)-(c02-sx)/(c22*c22))
	// ymax = (c12 − sy)/c22
	j.Set(3, 4, 1/(2*sy))
	j.Set(3, 5, (1-c12/sy)/c22)
	j.Set(3, 8, c11/(2*sy*c22)-(c12-sy)/(c22*c22))

	return box, j, nil
}
