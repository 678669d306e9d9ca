// SPDX-License-Identifier: MIT

package sweep

import "github.com/katalvlaran/segcolor/internal/randx"

// nilNode marks an absent link.
const nilNode = -1

// Sentinel slots in the arena.
const (
	headNode = 0
	tailNode = 1
)

// maxExtraLevels caps the coin-flip height growth per insertion.
const maxExtraLevels = 32

// link is one level of a node: its neighbours on that level.
type link struct {
	prev, next int
}

// node is an arena slot. links[l] is the node's presence on level l.
type node struct {
	seg   int
	links []link
}

// skipList is the sweep-line status structure: active segments ordered
// bottom-to-top at the current sweep position. Nodes live in an index arena;
// removed slots are recycled through a free list so no pointer graph is
// ever allocated per insertion beyond the first use of a slot.
//
// Complexity: O(log n) expected insert/erase/neighbour query.
type skipList struct {
	nodes []node
	free  []int
	at    []int // at[seg] = arena slot of seg, or nilNode
	bits  *randx.Bits
}

// less compares the segment being inserted against an active one. ok=false
// means the two cannot be ordered (they intersect); the caller records it.
type less func(newSeg, activeSeg int) (isLess, ok bool)

func newSkipList(numSegs int, bits *randx.Bits) *skipList {
	sl := &skipList{bits: bits}
	sl.reset(numSegs)

	return sl
}

// reset empties the list, keeping the arena capacity.
func (sl *skipList) reset(numSegs int) {
	sl.nodes = sl.nodes[:0]
	sl.free = sl.free[:0]
	sl.nodes = append(sl.nodes,
		node{seg: nilNode, links: []link{{prev: nilNode, next: tailNode}}},
		node{seg: nilNode, links: []link{{prev: headNode, next: nilNode}}},
	)
	if cap(sl.at) >= numSegs {
		sl.at = sl.at[:numSegs]
	} else {
		sl.at = make([]int, numSegs)
	}
	for i := range sl.at {
		sl.at[i] = nilNode
	}
}

func (sl *skipList) levels() int { return len(sl.nodes[headNode].links) }

// grow raises the sentinels to h levels.
func (sl *skipList) grow(h int) {
	for sl.levels() < h {
		sl.nodes[headNode].links = append(sl.nodes[headNode].links, link{prev: nilNode, next: tailNode})
		sl.nodes[tailNode].links = append(sl.nodes[tailNode].links, link{prev: headNode, next: nilNode})
	}
}

// alloc takes a slot from the free list or appends one.
func (sl *skipList) alloc(seg, h int) int {
	var id int
	if k := len(sl.free); k > 0 {
		id = sl.free[k-1]
		sl.free = sl.free[:k-1]
	} else {
		id = len(sl.nodes)
		sl.nodes = append(sl.nodes, node{})
	}
	n := &sl.nodes[id]
	n.seg = seg
	if cap(n.links) >= h {
		n.links = n.links[:h]
	} else {
		n.links = make([]link, h)
	}

	return id
}

// insert places seg into the list. Each comparison that fails to order the
// pair is handed to onConflict; when stopOnConflict is set the insertion is
// abandoned (nilNode is returned), otherwise seg is placed just below the
// node it could not be ordered against.
func (sl *skipList) insert(seg int, cmp less, onConflict func(a, b int), stopOnConflict bool) int {
	cur := sl.levels()
	h := sl.bits.Height(minInt(cur, maxExtraLevels))
	if h > cur {
		sl.grow(h)
	}

	update := make([]int, h)
	x := headNode
	for l := sl.levels() - 1; l >= 0; l-- {
		for {
			nx := sl.nodes[x].links[l].next
			if nx == tailNode {
				break
			}
			isLess, ok := cmp(seg, sl.nodes[nx].seg)
			if !ok {
				onConflict(seg, sl.nodes[nx].seg)
				if stopOnConflict {
					return nilNode
				}
				break
			}
			if isLess {
				break
			}
			x = nx
		}
		if l < h {
			update[l] = x
		}
	}

	id := sl.alloc(seg, h)
	for l := 0; l < h; l++ {
		p := update[l]
		nx := sl.nodes[p].links[l].next
		sl.nodes[id].links[l] = link{prev: p, next: nx}
		sl.nodes[p].links[l].next = id
		sl.nodes[nx].links[l].prev = id
	}
	sl.at[seg] = id

	return id
}

// erase unlinks seg and returns its former bottom-level neighbours.
func (sl *skipList) erase(seg int) (prev, next int, ok bool) {
	id := sl.at[seg]
	if id == nilNode {
		return nilNode, nilNode, false
	}
	n := &sl.nodes[id]
	prev, next = n.links[0].prev, n.links[0].next
	for l := range n.links {
		p, q := n.links[l].prev, n.links[l].next
		sl.nodes[p].links[l].next = q
		sl.nodes[q].links[l].prev = p
	}
	sl.at[seg] = nilNode
	n.seg = nilNode
	sl.free = append(sl.free, id)

	return prev, next, true
}

// neighbours returns the bottom-level neighbours of an arena slot.
func (sl *skipList) neighbours(id int) (prev, next int) {
	l := sl.nodes[id].links[0]
	return l.prev, l.next
}

// isSentinel reports whether id is the head or the tail.
func isSentinel(id int) bool { return id == headNode || id == tailNode }

// segAt returns the segment stored at slot id.
func (sl *skipList) segAt(id int) int { return sl.nodes[id].seg }

// order returns the active segments bottom-to-top (diagnostics and tests).
func (sl *skipList) order() []int {
	var out []int
	for id := sl.nodes[headNode].links[0].next; id != tailNode; id = sl.nodes[id].links[0].next {
		out = append(out, sl.nodes[id].seg)
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
