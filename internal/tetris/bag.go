package tetris

import "math/rand"

// Bag is a 7-bag randomizer: it deals every kind once, in shuffled order,
// before shuffling a fresh permutation.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a bag drawing its shuffles from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next removes and returns the upcoming kind, refilling first if empty.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// Peek returns the upcoming kind without consuming it.
func (b *Bag) Peek() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	return b.queue[0]
}

// Len returns the kinds left before the next reshuffle.
func (b *Bag) Len() int {
	return len(b.queue)
}

func (b *Bag) refill() {
	b.queue = append(b.queue[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
