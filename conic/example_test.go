package conic_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadrics/conic"
)

// A circle of radius 2 centered at (3, 4) has the tangent-line box
// [1, 5] × [2, 6].
func ExampleDualConic_Bounds() {
	c, err := conic.FromPose2(3, 4, 0, 2, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	box, err := c.Bounds()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(box)
	// Output:
	// AlignedBox2(1 2 5 6)
}

func ExampleDualConic_IsEllipse() {
	circle := conic.UnitCircle()
	fmt.Println(circle.IsEllipse())

	// A dual hyperbola has real tangent lines but no bounded point set.
	hyperbola, err := conic.New(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, -1, 0,
		0, 0, -1,
	}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hyperbola.IsEllipse())
	// Output:
	// true
	// false
}
