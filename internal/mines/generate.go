package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a generator seeded from the runtime's per-process hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewSeededRand returns a reproducible generator for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// placeMines picks MineCount distinct cells. Every subset of that size is
// equally likely.
func (b *Board) placeMines(r *rand.Rand) {
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range b.params.MineCount {
		i := r.IntN(k)
		b.cells[candidates[i]].mine = true
		k--
		candidates[i] = candidates[k]
	}
}

func (b *Board) countNeighbors() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.mine {
			continue
		}
		n := 0
		for j := range b.neighbors(c.x, c.y) {
			if b.cells[j].mine {
				n++
			}
		}
		c.neighborMines = n
	}
}
