package geom_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/3brp/foilgen/geom"
)

// ExampleEmbed places a two-point outline on the plane normal to X with
// chord 2: the X column is zeroed, 2D-x lands on Y and 2D-y on Z.
func ExampleEmbed() {
	loop := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0.5}}

	for _, p := range geom.Embed(loop, geom.AxisX, 2) {
		fmt.Printf("%g %g %g\n", p.X, p.Y, p.Z)
	}

	// Output:
	// 0 0 0
	// 0 2 1
}

// ExampleParseAxis resolves a lower-case selector.
func ExampleParseAxis() {
	axis, err := geom.ParseAxis("z")
	fmt.Println(axis, err)

	_, err = geom.ParseAxis("w")
	fmt.Println(err)

	// Output:
	// Z <nil>
	// geom: normal axis must be X, Y, or Z: got "w"
}
