package repair_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/repair"
)

// ExampleRun repairs the trivial colouring of two separate crossings.
func ExampleRun() {
	ins, err := builder.BuildInstance("pairs", nil, nil, builder.CrossingPairs(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	sol := coloring.New(ins)
	opts := repair.DefaultOptions()
	opts.MaxIters = 5000

	res, err := repair.Run(context.Background(), sol, nil, opts)
	fmt.Println(res.From, "->", res.To, err, sol.Valid())
	// Output: 4 -> 2 <nil> true
}
