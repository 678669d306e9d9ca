package recursive_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/recursive"
)

func BenchmarkSolve_Random(b *testing.B) {
	ins := build(b, []builder.BuilderOption{builder.WithSeed(1), builder.WithSpan(5000)},
		builder.RandomSegments(400, 1200))
	opts := smallOptions(1, 5000)
	opts.LeafSize = 50

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := recursive.Solve(context.Background(), ins, opts); err != nil {
			b.Fatal(err)
		}
	}
}
