// SPDX-License-Identifier: MIT

// Package sweep implements Bentley–Ottmann style sweep-line intersection
// detection over integer segments.
//
// A vertical line moves left to right over the segment endpoints. Events are
// ordered by x, then y; at a shared point exiting segments are removed before
// entering segments are inserted, so segments that only share an endpoint are
// never adjacent on the sweep line at the same time.
//
// The sweep-line status is a randomized skip list stored in an index arena.
// Its comparator orders two active segments at the current sweep position and
// doubles as the intersection detector: when two segments cannot be ordered
// they intersect and the pair is reported.
//
// Modes:
//   - FindAny stops at the first intersection. It is exact: if any pair of
//     segments intersects (per geom.Segment.Intersects) it reports one.
//   - FindAll keeps sweeping and reports every pair that becomes adjacent on
//     the sweep line while intersecting. Pairs hidden behind a third
//     coincident segment may be missed; use Overlapping when every pair is
//     needed.
//   - Overlapping enumerates every intersecting pair by testing segments
//     whose x-ranges overlap. It is exact and used to build conflict graphs.
//
// Complexity:
//   - FindAny: O(m log m) expected.
//   - FindAll: O((m + k) log m) expected, k = reported pairs.
//   - Overlapping: O(m log m + p), p = pairs with overlapping x-ranges.
package sweep
