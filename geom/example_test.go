package geom_test

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// ExampleSegment_Intersects shows the conflict relation on three segments
// that meet at (1,1).
func ExampleSegment_Intersects() {
	a := geom.NewSegment(geom.Pt(0, 0), geom.Pt(2, 2))
	b := geom.NewSegment(geom.Pt(0, 2), geom.Pt(2, 0))
	c := geom.NewSegment(geom.Pt(2, 2), geom.Pt(3, 0))

	fmt.Println(a.Intersects(b), a.Intersects(c), b.Intersects(c))
	// Output:
	// true false false
}
