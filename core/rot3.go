package core

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// rodriguesTaylorSwitch is the squared-angle threshold below which the
// Rodrigues coefficients switch to their Taylor expansions.
const rodriguesTaylorSwitch = 1e-10

// Rot3 is a 3D rotation stored as a row-major 3×3 matrix. The zero value is
// not valid; use IdentityRot3 or one of the constructors.
type Rot3 struct {
	m [9]float64 // row-major
}

// IdentityRot3 returns the identity rotation.
func IdentityRot3() Rot3 {
	return Rot3{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewRot3 builds a rotation from row-major entries. The caller is
// responsible for supplying an orthonormal matrix; entries are copied as-is.
func NewRot3(entries [9]float64) Rot3 {
	return Rot3{m: entries}
}

// Rodrigues returns the rotation exp([ω]ₓ) for the axis-angle vector ω,
// using the closed-form Rodrigues formula with a Taylor fallback near zero.
func Rodrigues(w r3.Vector) Rot3 {
	theta2 := w.X*w.X + w.Y*w.Y + w.Z*w.Z

	// sin(θ)/θ and (1-cos(θ))/θ² with series expansions for small θ.
	var a, b float64
	if theta2 < rodriguesTaylorSwitch {
		a = 1 - theta2/6
		b = 0.5 - theta2/24
	} else {
		theta := math.Sqrt(theta2)
		a = math.Sin(theta) / theta
		b = (1 - math.Cos(theta)) / theta2
	}

	wx, wy, wz := w.X, w.Y, w.Z
	// K = [ω]ₓ, K² computed entrywise.
	k2 := [9]float64{
		-wy*wy - wz*wz, wx * wy, wx * wz,
		wx * wy, -wx*wx - wz*wz, wy * wz,
		wx * wz, wy * wz, -wx*wx - wy*wy,
	}
	k := [9]float64{
		0, -wz, wy,
		wz, 0, -wx,
		-wy, wx, 0,
	}

	var r Rot3
	id := IdentityRot3()
	for i := 0; i < 9; i++ {
		r.m[i] = id.m[i] + a*k[i] + b*k2[i]
	}
	return r
}

// Matrix returns a fresh 3×3 gonum matrix with the rotation entries.
func (r Rot3) Matrix() *mat.Dense {
	data := make([]float64, 9)
	copy(data, r.m[:])
	return mat.NewDense(3, 3, data)
}

// At returns the (i, j) entry.
func (r Rot3) At(i, j int) float64 { return r.m[3*i+j] }

// Compose returns r·o.
func (r Rot3) Compose(o Rot3) Rot3 {
	var out Rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += r.m[3*i+k] * o.m[3*k+j]
			}
			out.m[3*i+j] = s
		}
	}
	return out
}

// Inverse returns the transpose (= inverse for a rotation).
func (r Rot3) Inverse() Rot3 {
	var out Rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.m[3*i+j] = r.m[3*j+i]
		}
	}
	return out
}

// Rotate applies the rotation to v.
func (r Rot3) Rotate(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: r.m[0]*v.X + r.m[1]*v.Y + r.m[2]*v.Z,
		Y: r.m[3]*v.X + r.m[4]*v.Y + r.m[5]*v.Z,
		Z: r.m[6]*v.X + r.m[7]*v.Y + r.m[8]*v.Z,
	}
}

// Unrotate applies the inverse rotation to v.
func (r Rot3) Unrotate(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: r.m[0]*v.X + r.m[3]*v.Y + r.m[6]*v.Z,
		Y: r.m[1]*v.X + r.m[4]*v.Y + r.m[7]*v.Z,
		Z: r.m[2]*v.X + r.m[5]*v.Y + r.m[8]*v.Z,
	}
}

// Equals reports entrywise equality within tol.
func (r Rot3) Equals(o Rot3, tol float64) bool {
	for i := 0; i < 9; i++ {
		if math.Abs(r.m[i]-o.m[i]) > tol {
			return false
		}
	}
	return true
}
