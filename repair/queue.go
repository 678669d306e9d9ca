package repair

import "math/rand"

// badQueue holds the bad items. Random pick swaps the chosen item with the
// last one and pops it; FIFO advances a head index.
type badQueue struct {
	items  []int
	head   int
	policy Policy
}

func (q *badQueue) reset(policy Policy) {
	q.items = q.items[:0]
	q.head = 0
	q.policy = policy
}

func (q *badQueue) len() int { return len(q.items) - q.head }

func (q *badQueue) push(e int) { q.items = append(q.items, e) }

func (q *badQueue) pop(rng *rand.Rand) int {
	if q.policy == FIFO {
		e := q.items[q.head]
		q.head++
		if q.head > 1024 && q.head*2 > len(q.items) {
			n := copy(q.items, q.items[q.head:])
			q.items = q.items[:n]
			q.head = 0
		}
		return e
	}
	last := len(q.items) - 1
	i := rng.Intn(len(q.items))
	q.items[i], q.items[last] = q.items[last], q.items[i]
	e := q.items[last]
	q.items = q.items[:last]

	return e
}

// snapshot returns the queued items in queue order.
func (q *badQueue) snapshot() []int {
	return append([]int(nil), q.items[q.head:]...)
}
