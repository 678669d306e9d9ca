package store_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/store"
)

// ExampleStore_SaveIfBetter keeps only improvements.
func ExampleStore_SaveIfBetter() {
	dir, _ := os.MkdirTemp("", "segcolor-store")
	defer os.RemoveAll(dir)
	st := store.New(dir)

	ins, _ := builder.BuildInstance("pairs", nil, nil, builder.CrossingPairs(2))
	first := coloring.New(ins) // one colour per segment
	saved, err := st.SaveIfBetter(first)
	fmt.Println(saved, err)

	again, _ := st.SaveIfBetter(first.Clone())
	fmt.Println(again)

	better := coloring.New(ins)
	better.GreedySorted()
	saved, _ = st.SaveIfBetter(better)
	best, _ := st.Best(ins)
	fmt.Println(saved, best.NumColors())
	// Output:
	// true <nil>
	// false
	// true 2
}
