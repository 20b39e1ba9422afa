package exercise

import (
	"math/rand/v2"
	"slices"

	"github.com/felixgeelhaar/pickex/internal/domain"
)

// DefaultSeed keeps draws reproducible across runs
const DefaultSeed uint64 = 42

// Sampler draws exercises uniformly without replacement
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler with a PCG source fixed by seed
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample returns min(n, len(candidates)) distinct refs in draw order.
// The same seed and the same ordered candidates give the same result.
func (s *Sampler) Sample(candidates []domain.Ref, n int) []domain.Ref {
	if n <= 0 || len(candidates) == 0 {
		return []domain.Ref{}
	}
	n = min(n, len(candidates))

	pool := slices.Clone(candidates)
	for i := range n {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
