// SPDX-License-Identifier: MIT

package sweep

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSkipList_OrderAndFreeList inserts keys under a plain integer order,
// erases half and reinserts, checking order and slot reuse.
func TestSkipList_OrderAndFreeList(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(9))
	keys := rng.Perm(n)
	sl := newSkipList(n, randx.NewBits(rng))
	cmp := func(a, b int) (bool, bool) { return keys[a] < keys[b], true }
	fail := func(a, b int) { t.Fatalf("unexpected conflict %d %d", a, b) }

	for i := 0; i < n; i++ {
		require.NotEqual(t, nilNode, sl.insert(i, cmp, fail, true))
	}
	assertSorted(t, sl.order(), keys)
	require.Len(t, sl.order(), n)

	for i := 0; i < n; i += 2 {
		_, _, ok := sl.erase(i)
		require.True(t, ok)
	}
	_, _, ok := sl.erase(0)
	assert.False(t, ok)
	assert.Len(t, sl.free, n/2)
	assertSorted(t, sl.order(), keys)

	slots := len(sl.nodes)
	for i := 0; i < n; i += 2 {
		sl.insert(i, cmp, fail, true)
	}
	assert.Equal(t, slots, len(sl.nodes), "freed slots are reused")
	assert.Empty(t, sl.free)
	assertSorted(t, sl.order(), keys)
}

// TestSkipList_Conflict stops or inserts before the conflicting node.
func TestSkipList_Conflict(t *testing.T) {
	sl := newSkipList(3, randx.NewBits(rand.New(rand.NewSource(1))))
	ok := func(a, b int) (bool, bool) { return a < b, true }
	var reported [][2]int
	rec := func(a, b int) { reported = append(reported, [2]int{a, b}) }
	sl.insert(0, ok, rec, true)
	sl.insert(2, ok, rec, true)

	clash := func(a, b int) (bool, bool) {
		if b == 2 {
			return false, false
		}
		return a < b, true
	}
	assert.Equal(t, nilNode, sl.insert(1, clash, rec, true))
	assert.Equal(t, []int{0, 2}, sl.order())

	id := sl.insert(1, clash, rec, false)
	require.NotEqual(t, nilNode, id)
	assert.Equal(t, []int{0, 1, 2}, sl.order())
	prev, next := sl.neighbours(id)
	assert.Equal(t, 0, sl.segAt(prev))
	assert.Equal(t, 2, sl.segAt(next))
	assert.Contains(t, reported, [2]int{1, 2})
}

func assertSorted(t *testing.T, order, keys []int) {
	t.Helper()
	assert.True(t, sort.SliceIsSorted(order, func(i, j int) bool { return keys[order[i]] < keys[order[j]] }))
}
