package core

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// BoxDim is the dimension of a box vector: (xmin, ymin, xmax, ymax).
const BoxDim = 4

// AlignedBox2 is an axis-aligned rectangle on the image plane. No ordering
// between min and max is enforced; it represents whatever interval pair the
// producing computation yielded.
type AlignedBox2 struct {
	XMin, YMin, XMax, YMax float64
}

// NewAlignedBox2 builds a box from its four edges.
func NewAlignedBox2(xmin, ymin, xmax, ymax float64) AlignedBox2 {
	return AlignedBox2{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// BoxFromVector builds a box from a 4-vector in (xmin, ymin, xmax, ymax) order.
func BoxFromVector(v []float64) (AlignedBox2, error) {
	if len(v) != BoxDim {
		return AlignedBox2{}, fmt.Errorf("box: got %d components: %w", len(v), ErrBadDimension)
	}
	return AlignedBox2{XMin: v[0], YMin: v[1], XMax: v[2], YMax: v[3]}, nil
}

// Vector returns the box as a fresh 4-vector (xmin, ymin, xmax, ymax).
func (b AlignedBox2) Vector() []float64 {
	return []float64{b.XMin, b.YMin, b.XMax, b.YMax}
}

// Width returns xmax − xmin.
func (b AlignedBox2) Width() float64 { return b.XMax - b.XMin }

// Height returns ymax − ymin.
func (b AlignedBox2) Height() float64 { return b.YMax - b.YMin }

// Center returns the box midpoint.
func (b AlignedBox2) Center() r2.Point {
	return r2.Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Contains reports whether pt lies inside or on the box boundary.
func (b AlignedBox2) Contains(pt r2.Point) bool {
	return pt.X >= b.XMin && pt.X <= b.XMax && pt.Y >= b.YMin && pt.Y <= b.YMax
}

// Equals reports edgewise equality within tol.
func (b AlignedBox2) Equals(o AlignedBox2, tol float64) bool {
	return math.Abs(b.XMin-o.XMin) <= tol &&
		math.Abs(b.YMin-o.YMin) <= tol &&
		math.Abs(b.XMax-o.XMax) <= tol &&
		math.Abs(b.YMax-o.YMax) <= tol
}

// String renders the box for diagnostics.
func (b AlignedBox2) String() string {
	return fmt.Sprintf("AlignedBox2(%.6g %.6g %.6g %.6g)", b.XMin, b.YMin, b.XMax, b.YMax)
}
