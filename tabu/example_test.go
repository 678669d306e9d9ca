// SPDX-License-Identifier: MIT

package tabu_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/tabu"
)

// ExampleRun resolves two colliding crossings with two colours.
func ExampleRun() {
	ins, err := builder.BuildInstance("pairs", nil, nil, builder.CrossingPairs(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	sol, _ := coloring.FromColors(ins, []int{0, 0, 0, 0})
	sol.SetNumColors(2)

	opts := tabu.DefaultOptions()
	opts.MaxIters = 1000
	res, err := tabu.Run(context.Background(), sol, opts)
	fmt.Println(res.Initial, res.Solved, sol.Conflicts(), err)
	// Output: 2 true 0 <nil>
}
