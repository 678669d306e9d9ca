package randx

import "math/rand"

// Bits hands out fair coin flips, consuming one 64-bit draw per 64 flips.
// It is used by the sweep-line skip list to pick node heights.
type Bits struct {
	rng   *rand.Rand
	word  uint64
	avail uint
}

// NewBits wraps rng (nil ⇒ default deterministic stream).
func NewBits(rng *rand.Rand) *Bits {
	return &Bits{rng: OrDefault(rng)}
}

// Flip returns one uniformly random bit.
func (b *Bits) Flip() bool {
	if b.avail == 0 {
		b.word = b.rng.Uint64()
		b.avail = 64
	}
	bit := b.word&1 != 0
	b.word >>= 1
	b.avail--

	return bit
}

// Height draws a geometric height in [1, limit+1]: one level plus one more
// for every consecutive true flip, capped at limit extra levels.
func (b *Bits) Height(limit int) int {
	h := 0
	for h < limit && b.Flip() {
		h++
	}

	return h + 1
}
