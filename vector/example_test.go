package vector_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/vector"
)

// ExampleVector3_Unitize shows the bool-flag policy on degenerate input.
func ExampleVector3_Unitize() {
	v := vector.New3(0, -2, 0)
	ok := v.Unitize()
	fmt.Println(ok, v)

	var zero vector.Vector3
	ok = zero.Unitize()
	fmt.Println(ok, zero)

	// Output:
	// true (0, -1, 0)
	// false (0, 0, 0)
}

// ExampleVector3_Angle is never NaN for parallel input, even with rounding.
func ExampleVector3_Angle() {
	a := vector.New3(0.1, 0.2, 0.3)
	fmt.Println(a.Angle(a.Scale(3)) < 1e-7, math.IsNaN(a.Angle(a)))
	fmt.Printf("%.4f\n", vector.UnitX.Angle(vector.UnitY))

	// Output:
	// true false
	// 1.5708
}
