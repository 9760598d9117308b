package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer samples weight and bias values from a uniform distribution
// over (0.01, 1.0) with an explicitly seeded source, so initialization is
// deterministic per seed and isolated from ambient global state.
//
// Every weight and bias is drawn independently; duplicating one sample
// across a neuron's weights would make the weights numerically
// indistinguishable and is deliberately not done here.
//
// Example:
//
//	init := nn.NewInitializer(42)
//	model := nn.NewMLP(2, []int{3, 3, 1}, init)
type Initializer struct {
	dist distuv.Uniform
}

// NewInitializer creates an Initializer seeded with seed.
func NewInitializer(seed uint64) *Initializer {
	return &Initializer{
		dist: distuv.Uniform{
			Min: 0.01,
			Max: 1.0,
			Src: rand.NewPCG(seed, seed),
		},
	}
}

// Sample draws the next value from the distribution.
func (in *Initializer) Sample() float64 {
	return in.dist.Rand()
}
