package factor_test

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/factor"
	"github.com/katalvlaran/quadrics/quadric"
)

// A camera sitting exactly on the sphere surface projects a degenerate
// conic; instead of failing, the factor reports the sentinel residual with
// zero Jacobians so an optimizer can carry on.
func ExampleBoundingBox_Evaluate_degenerate() {
	cal, err := core.NewCalibration(525, 525, 0, 320, 240)
	if err != nil {
		fmt.Println(err)
		return
	}
	sphere, err := quadric.New(core.IdentityPose3(), r3.Vector{X: 1, Y: 1, Z: 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	noise, err := factor.IsotropicNoise(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	onSurface := core.LookAt(r3.Vector{X: 1}, r3.Vector{}, r3.Vector{Z: 1})

	f := factor.New(core.NewAlignedBox2(0, 0, 10, 10), cal, noise, 0, 1,
		factor.DefaultOptions())
	res := f.Evaluate(onSurface, sphere)
	fmt.Println(res[0], res[1], res[2], res[3])
	// Output:
	// 1000 1000 1000 1000
}
