package conic

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/core"
)

// borderEps is the slack used when testing whether a candidate extremal or
// border point lies within the image.
const borderEps = 1e-9

// SmartBounds returns the tight bounding box of the ellipse boundary in
// pixel coordinates: the box through the actual extremal points of the
// conic, truncated to the image extent implied by the calibration. Unlike
// Bounds it requires a genuine bounded ellipse; a degenerate conic, a
// non-ellipse, or an extremal solve with no usable real points each fail
// with their typed error so the caller can select its degeneracy policy.
func (c DualConic) SmartBounds(cal core.Calibration) (core.AlignedBox2, error) {
	if c.IsDegenerate() {
		return core.AlignedBox2{}, ErrDegenerate
	}
	if !c.IsEllipse() {
		return core.AlignedBox2{}, ErrNotEllipse
	}

	// Work on the primal (point) conic P = adj(C*):
	//   F(x, y) = a·x² + 2b·xy + cc·y² + 2d·x + 2e·y + f = 0.
	p := c.adjugate()
	a, b, d := p[0], p[1], p[2]
	cc, e := p[4], p[5]
	f := p[8]
	width, height := cal.ImageWidth(), cal.ImageHeight()

	// det of the 2×2 leading block; positive for an ellipse (checked above).
	minor := a*cc - b*b

	var pts []r2.Point

	// Leftmost/rightmost points: ∂F/∂y = 0 folded into F gives a quadratic
	// in x; the conjugate diameter recovers y.
	qx := d*cc - e*b
	discX := qx*qx - minor*(f*cc-e*e)
	// Topmost/bottommost points, symmetrically.
	qy := e*a - d*b
	discY := qy*qy - minor*(f*a-d*d)
	if discX < 0 || discY < 0 {
		return core.AlignedBox2{}, ErrNoRealExtrema
	}
	for _, sign := range [2]float64{1, -1} {
		x := (-qx + sign*math.Sqrt(discX)) / minor
		pts = append(pts, r2.Point{X: x, Y: -(b*x + e) / cc})

		y := (-qy + sign*math.Sqrt(discY)) / minor
		pts = append(pts, r2.Point{X: -(b*y + d) / a, Y: y})
	}

	// Conic ∩ image borders: substituting x = k (or y = k) into F leaves a
	// quadratic in the remaining coordinate.
	for _, k := range [2]float64{0, width} {
		for _, y := range solveQuadratic(cc, 2*(b*k+e), a*k*k+2*d*k+f) {
			pts = append(pts, r2.Point{X: k, Y: y})
		}
	}
	for _, k := range [2]float64{0, height} {
		for _, x := range solveQuadratic(a, 2*(b*k+d), cc*k*k+2*e*k+f) {
			pts = append(pts, r2.Point{X: x, Y: k})
		}
	}

	// Image corners covered by the ellipse interior also bound the visible
	// region (the ellipse may enclose part or all of the image). Interior
	// sign is fixed by evaluating F at the ellipse center.
	x0 := (b*e - cc*d) / minor
	y0 := (b*d - a*e) / minor
	interior := evalPrimal(p, x0, y0)
	for _, corner := range [4]r2.Point{{}, {X: width}, {Y: height}, {X: width, Y: height}} {
		if evalPrimal(p, corner.X, corner.Y)*interior > 0 {
			pts = append(pts, corner)
		}
	}

	// Keep points that are on the visible part of the plane.
	image := core.NewAlignedBox2(-borderEps, -borderEps, width+borderEps, height+borderEps)
	first := true
	var box core.AlignedBox2
	for _, pt := range pts {
		if !image.Contains(pt) {
			continue
		}
		if first {
			box = core.NewAlignedBox2(pt.X, pt.Y, pt.X, pt.Y)
			first = false
			continue
		}
		box.XMin = math.Min(box.XMin, pt.X)
		box.YMin = math.Min(box.YMin, pt.Y)
		box.XMax = math.Max(box.XMax, pt.X)
		box.YMax = math.Max(box.YMax, pt.Y)
	}
	if first {
		return core.AlignedBox2{}, ErrNoRealExtrema
	}
	return box, nil
}

// SmartBoundsJacobian is SmartBounds plus the 4×9 Jacobian of the box with
// respect to the row-major conic entries, approximated by central finite
// differences with step core.DefaultFDStep. The truncation to the image
// makes the tight box piecewise smooth, so an analytic form would be
// branch-dependent; the reference behavior uses a numeric derivative here
// as well.
func (c DualConic) SmartBoundsJacobian(cal core.Calibration) (core.AlignedBox2, *mat.Dense, error) {
	box, err := c.SmartBounds(cal)
	if err != nil {
		return core.AlignedBox2{}, nil, err
	}

	var evalErr error
	j := mat.NewDense(core.BoxDim, MatrixDim, nil)
	fd.Jacobian(j, func(y, x []float64) {
		var entries [9]float64
		copy(entries[:], x)
		b, err := fromEntries(entries).SmartBounds(cal)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		copy(y, b.Vector())
	}, c.Vector(), &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    core.DefaultFDStep,
	})
	if evalErr != nil {
		return core.AlignedBox2{}, nil, evalErr
	}
	return box, j, nil
}

// evalPrimal evaluates the primal conic polynomial F(x, y) for the row-major
// symmetric coefficient matrix p.
func evalPrimal(p [9]float64, x, y float64) float64 {
	return p[0]*x*x + 2*p[1]*x*y + p[4]*y*y + 2*p[2]*x + 2*p[5]*y + p[8]
}

// solveQuadratic returns the real roots of a·t² + b·t + c = 0. A vanishing
// leading coefficient degrades to the linear case; complex roots yield none.
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < DefaultDegeneracyTol {
		if math.Abs(b) < DefaultDegeneracyTol {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	s := math.Sqrt(disc)
	return []float64{(-b + s) / (2 * a), (-b - s) / (2 * a)}
}
