package conic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MatrixDim counts the independent numeric entries of the 3×3 conic matrix
// in the row-major vectorization used for Jacobians.
const MatrixDim = 9

// normalizeFallbackTol guards the canonical-entry normalization: below it the
// (2,2) entry is treated as zero and the Frobenius norm is used instead.
const normalizeFallbackTol = 1e-12

// DualConic is a 3×3 symmetric matrix representing a conic in dual (line)
// form. It is an immutable value type; all methods return fresh values.
type DualConic struct {
	m [9]float64 // row-major, symmetric
}

// UnitCircle returns the dual conic of the unit circle at the origin.
func UnitCircle() DualConic {
	return DualConic{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, -1}}
}

// New builds a dual conic from a 3×3 matrix. The input is symmetrized as
// (M + Mᵀ)/2; non-finite entries are rejected.
func New(m mat.Matrix) (DualConic, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return DualConic{}, fmt.Errorf("got %dx%d: %w", r, c, ErrBadMatrix)
	}
	var dc DualConic
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := (m.At(i, j) + m.At(j, i)) / 2
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return DualConic{}, ErrBadMatrix
			}
			dc.m[3*i+j] = v
		}
	}
	return dc, nil
}

// FromPose2 builds the dual conic of an ellipse with semi-axes (ra, rb)
// centered at (x, y) and rotated by theta: C* = Z·diag(ra², rb², −1)·Zᵀ.
func FromPose2(x, y, theta, ra, rb float64) (DualConic, error) {
	if !(ra > 0) || !(rb > 0) || math.IsInf(ra, 0) || math.IsInf(rb, 0) {
		return DualConic{}, ErrInvalidRadii
	}
	ct, st := math.Cos(theta), math.Sin(theta)
	z := mat.NewDense(3, 3, []float64{
		ct, -st, x,
		st, ct, y,
		0, 0, 1,
	})
	d := mat.NewDiagDense(3, []float64{ra * ra, rb * rb, -1})

	var zd, c mat.Dense
	zd.Mul(z, d)
	c.Mul(&zd, z.T())
	return New(&c)
}

// fromEntries builds a conic straight from row-major entries, without
// symmetrization. Used by the finite-difference paths, which perturb single
// entries of the 9-vector.
func fromEntries(e [9]float64) DualConic { return DualConic{m: e} }

// Matrix returns a fresh 3×3 gonum matrix of the conic.
func (c DualConic) Matrix() *mat.Dense {
	data := make([]float64, 9)
	copy(data, c.m[:])
	return mat.NewDense(3, 3, data)
}

// At returns the (i, j) entry.
func (c DualConic) At(i, j int) float64 { return c.m[3*i+j] }

// Vector returns the fresh row-major 9-vector of entries, the vectorization
// all conic Jacobians in the module are expressed over.
func (c DualConic) Vector() []float64 {
	v := make([]float64, MatrixDim)
	copy(v, c.m[:])
	return v
}

// det returns the 3×3 determinant in closed form.
func (c DualConic) det() float64 {
	m := c.m
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// adjugate returns the row-major adjugate, which is the primal (point) conic
// up to scale. The adjugate of s·C* is s²·adj(C*), so any predicate built on
// it is insensitive to the sign of the dual conic's scale.
func (c DualConic) adjugate() [9]float64 {
	m := c.m
	return [9]float64{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
}

// Normalize returns the conic scaled so its (2,2) entry is 1. When that
// entry is numerically zero the Frobenius norm is used instead.
func (c DualConic) Normalize() DualConic {
	s := c.m[8]
	if math.Abs(s) < normalizeFallbackTol {
		s = 0
		for _, v := range c.m {
			s += v * v
		}
		s = math.Sqrt(s)
		if s == 0 {
			return c
		}
	}
	var out DualConic
	for i := range c.m {
		out.m[i] = c.m[i] / s
	}
	return out
}

// IsDegenerate reports whether |det C*| falls below DefaultDegeneracyTol.
func (c DualConic) IsDegenerate() bool {
	return c.IsDegenerateWithin(DefaultDegeneracyTol)
}

// IsDegenerateWithin is IsDegenerate with a caller-chosen tolerance.
func (c DualConic) IsDegenerateWithin(tol float64) bool {
	return math.Abs(c.det()) < tol
}

// IsEllipse reports whether the conic's real points form a bounded ellipse.
// Degenerate conics are never ellipses; otherwise the primal form P=adj(C*)
// must have a positive leading 2×2 minor (rules out hyperbolas and line
// pairs) and negative trace of that block (rules out the imaginary case).
func (c DualConic) IsEllipse() bool {
	if c.IsDegenerate() {
		return false
	}
	p := c.adjugate()
	minor := p[0]*p[4] - p[1]*p[3]
	return minor > 0 && p[0]+p[4] < 0
}

// Equals compares two dual conics after normalization, so matrices differing
// only by a nonzero scalar multiple compare equal.
func (c DualConic) Equals(o DualConic, tol float64) bool {
	a, b := c.Normalize(), o.Normalize()
	for i := range a.m {
		if math.Abs(a.m[i]-b.m[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the conic entries for diagnostics.
func (c DualConic) String() string {
	return fmt.Sprintf("DualConic[%.6g %.6g %.6g; %.6g %.6g %.6g; %.6g %.6g %.6g]",
		c.m[0], c.m[1], c.m[2], c.m[3], c.m[4], c.m[5], c.m[6], c.m[7], c.m[8])
}
