// SPDX-License-Identifier: MIT

package builder

// Method names prefix constructor errors.
const (
	MethodGrid           = "Grid"
	MethodCrossingPairs  = "CrossingPairs"
	MethodPencil         = "Pencil"
	MethodConvexComplete = "ConvexComplete"
	MethodChain          = "Chain"
	MethodRandomSegments = "RandomSegments"
)

// Minimum sizes.
const (
	MinGridDim        = 1
	MinPairs          = 1
	MinPencil         = 1
	MinConvexPoints   = 2
	MinChain          = 1
	MinRandomPoints   = 2
	maxSampleAttempts = 1 << 20
)

// Coordinate defaults.
const (
	DefaultScale int64 = 10
	DefaultGap   int64 = 10
	DefaultSpan  int64 = 1000
)
