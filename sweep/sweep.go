// SPDX-License-Identifier: MIT

package sweep

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/internal/randx"
)

// Intersection is a reported pair of intersecting segments. A < B are
// indices into the slice given to New; X, Y approximate a common point.
type Intersection struct {
	A, B int
	X, Y float64
}

type eventKind uint8

// Exits sort before entries at a shared point. A zero-length segment exits
// after it enters.
const (
	exitEvent eventKind = iota
	enterEvent
	exitDegenerate
)

type event struct {
	p    geom.Point
	kind eventKind
	seg  int
}

// Sweeper runs sweeps over a fixed set of segments. It is not safe for
// concurrent use; the sorted event queue is reused across calls.
type Sweeper struct {
	segs   []geom.Segment
	events []event
	list   *skipList

	found []Intersection
	seen  map[[2]int]struct{}
	stop  bool
}

// New prepares a sweeper over canonicalised copies of segments. rng drives
// the skip-list heights (nil ⇒ deterministic default stream).
func New(segments []geom.Segment, rng *rand.Rand) *Sweeper {
	segs := make([]geom.Segment, len(segments))
	events := make([]event, 0, 2*len(segments))
	for i, s := range segments {
		s = s.Canonical()
		segs[i] = s
		exit := exitEvent
		if s.S == s.T {
			exit = exitDegenerate
		}
		events = append(events,
			event{p: s.S, kind: enterEvent, seg: i},
			event{p: s.T, kind: exit, seg: i},
		)
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.p != b.p {
			return a.p.Less(b.p)
		}
		if a.kind != b.kind {
			return a.kind < b.kind
		}

		return a.seg < b.seg
	})

	return &Sweeper{
		segs:   segs,
		events: events,
		list:   newSkipList(len(segs), randx.NewBits(rng)),
	}
}

// Len returns the number of segments.
func (s *Sweeper) Len() int { return len(s.segs) }

// FindAny reports one intersecting pair, or false when the segments are
// pairwise non-intersecting.
func (s *Sweeper) FindAny() (Intersection, bool) {
	s.run(true)
	if len(s.found) == 0 {
		return Intersection{}, false
	}

	return s.found[0], true
}

// FindAll reports the intersecting pairs that meet on the sweep line,
// sorted by (A, B) and without duplicates.
func (s *Sweeper) FindAll() []Intersection {
	s.run(false)
	out := append([]Intersection(nil), s.found...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// AnyIntersection is a one-shot FindAny.
func AnyIntersection(segments []geom.Segment, rng *rand.Rand) (Intersection, bool) {
	return New(segments, rng).FindAny()
}

func (s *Sweeper) run(firstOnly bool) {
	s.list.reset(len(s.segs))
	s.found = s.found[:0]
	s.seen = make(map[[2]int]struct{})
	s.stop = false

	for _, ev := range s.events {
		switch ev.kind {
		case enterEvent:
			s.enter(ev.seg, firstOnly)
		default:
			s.exit(ev.seg)
		}
		if firstOnly && s.stop {
			return
		}
	}
}

func (s *Sweeper) enter(seg int, firstOnly bool) {
	id := s.list.insert(seg, s.less, s.report, firstOnly)
	if id == nilNode || (firstOnly && s.stop) {
		return
	}
	prev, next := s.list.neighbours(id)
	if !isSentinel(prev) {
		s.check(seg, s.list.segAt(prev))
		if firstOnly && s.stop {
			return
		}
	}
	if !isSentinel(next) {
		s.check(seg, s.list.segAt(next))
	}
}

func (s *Sweeper) exit(seg int) {
	prev, next, ok := s.list.erase(seg)
	if !ok || isSentinel(prev) || isSentinel(next) {
		return
	}
	s.check(s.list.segAt(prev), s.list.segAt(next))
}

// check tests two sweep-adjacent segments exactly.
func (s *Sweeper) check(a, b int) {
	if s.segs[a].Intersects(s.segs[b]) {
		s.report(a, b)
	}
}

func (s *Sweeper) report(a, b int) {
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	x, y := s.segs[a].ApproxIntersection(s.segs[b])
	s.found = append(s.found, Intersection{A: a, B: b, X: x, Y: y})
	s.stop = true
}

func (s *Sweeper) less(newSeg, activeSeg int) (bool, bool) {
	return compareAt(s.segs[newSeg], s.segs[activeSeg])
}

// compareAt orders the entering segment a against the active segment b at
// the sweep position a.S.X. It returns ok=false when they cannot be ordered
// because they intersect there.
func compareAt(a, b geom.Segment) (isLess, ok bool) {
	av, bv := a.IsVertical(), b.IsVertical()
	switch {
	case av && bv:
		// Two active verticals at one x overlap unless one is a point sitting
		// on an endpoint of the other.
		if a.Intersects(b) {
			return false, false
		}
		return a.T.Less(b.T), true
	case av:
		return verticalLess(a, b)
	case bv:
		l, ok := verticalLess(b, a)
		if !ok {
			return false, false
		}
		return !l, true
	default:
		return slopedLess(a, b)
	}
}

// verticalLess orders a vertical segment v against a non-vertical o.
func verticalLess(v, o geom.Segment) (bool, bool) {
	if o.S.X == v.S.X {
		if o.S.Y <= v.S.Y {
			return false, true
		}
		// o starts inside v.
		return false, false
	}
	dx, dy := o.T.X-o.S.X, o.T.Y-o.S.Y
	lhs := (v.S.X - o.S.X) * dy
	bottom := dx * (v.S.Y - o.S.Y)
	top := dx * (v.T.Y - o.S.Y)
	switch {
	case lhs > top:
		return true, true
	case lhs < bottom:
		return false, true
	case o.T == v.T:
		return true, true
	}

	return false, false
}

// slopedLess orders two non-vertical segments, a entering and b active.
func slopedLess(a, b geom.Segment) (bool, bool) {
	dxa, dya := a.T.X-a.S.X, a.T.Y-a.S.Y
	dxb, dyb := b.T.X-b.S.X, b.T.Y-b.S.Y
	if a.S.X == b.S.X {
		if a.S.Y > b.S.Y {
			return false, true
		}
		// Same start point: order by incline.
		l, r := dya*dxb, dyb*dxa
		switch {
		case l < r:
			return true, true
		case r < l:
			return false, true
		}
		return false, false
	}
	lhs := (a.S.X - b.S.X) * dyb
	rhs := dxb * (a.S.Y - b.S.Y)
	switch {
	case lhs < rhs:
		return false, true
	case rhs < lhs:
		return true, true
	}

	return false, false
}
