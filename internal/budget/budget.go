// Package budget implements the soft stop conditions shared by the long
// running engines: a wall-clock limit, an iteration cap and context
// cancellation, all checked sparsely so the hot loops stay cheap.
//
// Policy:
//   - TimeLimit == 0 ⇒ no wall-clock limit; MaxIters == 0 ⇒ no iteration cap.
//   - The clock and the context are consulted once every CheckEvery steps.
//   - Once Exhausted reports true it keeps reporting true.
package budget

import (
	"context"
	"time"
)

// DefaultCheckEvery is the stride between two clock reads.
const DefaultCheckEvery = 1024

// Budget tracks the remaining allowance of one engine invocation.
type Budget struct {
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	maxIters    int
	every       int
	steps       int
	done        bool
}

// New starts a budget now. A nil ctx is treated as context.Background().
func New(ctx context.Context, timeLimit time.Duration, maxIters, checkEvery int) *Budget {
	if ctx == nil {
		ctx = context.Background()
	}
	if checkEvery <= 0 {
		checkEvery = DefaultCheckEvery
	}
	b := &Budget{ctx: ctx, maxIters: maxIters, every: checkEvery}
	if timeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(timeLimit)
	}
	if dl, ok := ctx.Deadline(); ok && (!b.useDeadline || dl.Before(b.deadline)) {
		b.useDeadline = true
		b.deadline = dl
	}

	return b
}

// Step counts one iteration and reports whether the budget is exhausted.
func (b *Budget) Step() bool {
	if b.done {
		return true
	}
	b.steps++
	if b.maxIters > 0 && b.steps > b.maxIters {
		b.done = true
		return true
	}
	if b.steps%b.every != 0 {
		return false
	}

	return b.poll()
}

// Exhausted checks the clock and the context immediately, without counting
// an iteration.
func (b *Budget) Exhausted() bool {
	if b.done {
		return true
	}

	return b.poll()
}

// Steps returns the number of iterations counted so far.
func (b *Budget) Steps() int { return b.steps }

// Remaining returns the wall-clock time left, or 0 when there is no deadline
// or it has passed.
func (b *Budget) Remaining() time.Duration {
	if !b.useDeadline {
		return 0
	}
	if d := time.Until(b.deadline); d > 0 {
		return d
	}

	return 0
}

// Limited reports whether a wall-clock deadline is in force.
func (b *Budget) Limited() bool { return b.useDeadline }

func (b *Budget) poll() bool {
	if b.ctx.Err() != nil {
		b.done = true
		return true
	}
	if b.useDeadline && !time.Now().Before(b.deadline) {
		b.done = true
		return true
	}

	return false
}
