// SPDX-License-Identifier: MIT

package coloring_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/instance"
)

// ExampleSolution_Verify shows a rejected and an accepted colouring of an X.
func ExampleSolution_Verify() {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(2, 2), geom.Pt(0, 2), geom.Pt(2, 0)}
	ins, _ := instance.New("x", 4, pts, []instance.Edge{{U: 0, V: 1}, {U: 2, V: 3}})

	same, _ := coloring.FromColors(ins, []int{0, 0})
	fmt.Println(errors.Is(same.Verify(), coloring.ErrConflict))

	s := coloring.New(ins)
	s.GreedySorted()
	fmt.Println(s.NumColors(), s.Verify())
	// Output:
	// true
	// 2 <nil>
}
