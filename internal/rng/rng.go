// Package rng is the seeded randomness port. Every shuffle, coin flip, and
// bot tiebreak in the engine flows through a Source so that a game can be
// replayed deterministically in tests.
package rng

import "math/rand/v2"

// Source is the RNG port consumed by the game state.
type Source interface {
	// Shuffle permutes n elements in place using swap(i, j).
	Shuffle(n int, swap func(i, j int))
	// CoinFlip consumes one draw and returns heads (true) or tails (false).
	CoinFlip() bool
}

// Default is a math/rand/v2-backed Source seeded at construction.
type Default struct {
	rnd *rand.Rand
}

// NewDefault builds a Default source seeded from seed. A zero seed still
// produces a deterministic sequence (callers wanting nondeterminism should
// seed from e.g. time.Now().UnixNano()).
func NewDefault(seed int64) *Default {
	return &Default{rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)^0x9e3779b9))}
}

func (d *Default) Shuffle(n int, swap func(i, j int)) {
	d.rnd.Shuffle(n, swap)
}

func (d *Default) CoinFlip() bool {
	return d.rnd.IntN(2) == 0
}

// Preloaded is the deterministic test double described in specification §5
// and §9: a queue of coin results consumed in order, falling back to heads
// once exhausted so tests that under-specify the queue still terminate
// rather than panic. Shuffle is a deterministic reverse-pairwise swap so
// that repeated runs of the same test produce the same permutation.
type Preloaded struct {
	Coins []bool
	next  int
}

// NewPreloaded builds a Preloaded source that returns coins in order.
func NewPreloaded(coins ...bool) *Preloaded {
	return &Preloaded{Coins: coins}
}

func (p *Preloaded) CoinFlip() bool {
	if p.next >= len(p.Coins) {
		return true
	}
	v := p.Coins[p.next]
	p.next++
	return v
}

func (p *Preloaded) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, 0)
	}
}
