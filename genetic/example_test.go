package genetic_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/segcolor/genetic"
)

// ExampleHungarian matches three workers to three jobs.
func ExampleHungarian() {
	cost := mat.NewDense(3, 3, []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2,
	})
	total, assign := genetic.Hungarian(cost)
	fmt.Println(total, assign)
	// Output: 5 [1 0 2]
}
