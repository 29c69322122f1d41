package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Calibration is a pinhole intrinsic model in the Cal3_S2 argument order:
// focal lengths fx, fy, axis skew s, and principal point (u0, v0).
type Calibration struct {
	fx, fy, skew, u0, v0 float64
}

// NewCalibration validates and builds a pinhole calibration. Focal lengths
// must be strictly positive and all parameters finite.
func NewCalibration(fx, fy, skew, u0, v0 float64) (Calibration, error) {
	if fx <= 0 || fy <= 0 {
		return Calibration{}, ErrInvalidCalibration
	}
	for _, p := range [...]float64{fx, fy, skew, u0, v0} {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Calibration{}, ErrInvalidCalibration
		}
	}
	return Calibration{fx: fx, fy: fy, skew: skew, u0: u0, v0: v0}, nil
}

// Fx returns the x focal length.
func (c Calibration) Fx() float64 { return c.fx }

// Fy returns the y focal length.
func (c Calibration) Fy() float64 { return c.fy }

// Skew returns the axis skew.
func (c Calibration) Skew() float64 { return c.skew }

// Principal returns the principal point (u0, v0).
func (c Calibration) Principal() (u0, v0 float64) { return c.u0, c.v0 }

// ImageWidth returns the usable image width 2·u0.
func (c Calibration) ImageWidth() float64 { return 2 * c.u0 }

// ImageHeight returns the usable image height 2·v0.
func (c Calibration) ImageHeight() float64 { return 2 * c.v0 }

// K returns the fresh 3×3 intrinsic matrix.
func (c Calibration) K() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		c.fx, c.skew, c.u0,
		0, c.fy, c.v0,
		0, 0, 1,
	})
}

// Equals reports parameterwise equality within tol.
func (c Calibration) Equals(o Calibration, tol float64) bool {
	return math.Abs(c.fx-o.fx) <= tol &&
		math.Abs(c.fy-o.fy) <= tol &&
		math.Abs(c.skew-o.skew) <= tol &&
		math.Abs(c.u0-o.u0) <= tol &&
		math.Abs(c.v0-o.v0) <= tol
}

// String renders the calibration for diagnostics.
func (c Calibration) String() string {
	return fmt.Sprintf("Calibration(fx=%g fy=%g s=%g u0=%g v0=%g)", c.fx, c.fy, c.skew, c.u0, c.v0)
}
