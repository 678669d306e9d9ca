package batch_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/segcolor/batch"
	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/config"
)

// ExampleRunner_Run colours one generated instance with the greedy engine
// and stores the result.
func ExampleRunner_Run() {
	dir, _ := os.MkdirTemp("", "segcolor-example")
	defer os.RemoveAll(dir)

	ins, _ := builder.BuildInstance("grid", nil, nil, builder.Grid(3, 3))
	path := filepath.Join(dir, "grid.instance.json")
	f, _ := os.Create(path)
	_ = ins.Encode(f)
	_ = f.Close()

	cfg := config.Default()
	cfg.Run.Solutions = filepath.Join(dir, "solutions")
	r, _ := batch.New(cfg)
	reports, err := r.Run(context.Background(), []string{path})
	fmt.Println(err, reports[0].Instance, reports[0].To, reports[0].Saved)
	// Output: <nil> grid 2 true
}
