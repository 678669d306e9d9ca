package instance_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/segcolor/instance"
)

// ExampleDecodeDIMACS builds an abstract triangle plus an isolated item.
func ExampleDecodeDIMACS() {
	ins, err := instance.DecodeDIMACS(strings.NewReader("p edge 4 3\ne 1 2\ne 2 3\ne 1 3\n"), "k3")
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < ins.Len(); i++ {
		fmt.Print(ins.Degree(i), " ")
	}
	fmt.Println(ins.NumConflicts())
	// Output: 2 2 2 0 3
}
