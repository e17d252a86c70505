package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer resolves the starting weight of every link at construction.
//
// Links are initialized in construction order: layer by layer, source-major
// within a layer pair. A seeded Initializer therefore yields the same network
// on every call to New.
type Initializer interface {
	Weight(source, dest NodeID) float64
}

// UniformInit draws weights from U[Min, Max).
type UniformInit struct {
	dist distuv.Uniform
}

// NewUniformInit returns the default [-0.5, 0.5) initializer driven by a PCG
// source seeded with seed.
func NewUniformInit(seed uint64) *UniformInit {
	return NewUniformInitFrom(rand.NewPCG(seed, seed))
}

// NewUniformInitFrom returns a [-0.5, 0.5) initializer on src. A nil src
// uses the global math/rand/v2 source and is not reproducible.
func NewUniformInitFrom(src rand.Source) *UniformInit {
	return &UniformInit{
		dist: distuv.Uniform{Min: -0.5, Max: 0.5, Src: src},
	}
}

// Weight implements Initializer.
func (u *UniformInit) Weight(_, _ NodeID) float64 {
	return u.dist.Rand()
}

// ConstantInit gives every link the same weight.
type ConstantInit float64

// Weight implements Initializer.
func (c ConstantInit) Weight(_, _ NodeID) float64 {
	return float64(c)
}

// InitFunc adapts a plain function to Initializer.
type InitFunc func(source, dest NodeID) float64

// Weight implements Initializer.
func (f InitFunc) Weight(source, dest NodeID) float64 {
	return f(source, dest)
}
