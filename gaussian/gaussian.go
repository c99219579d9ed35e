// Package gaussian provides a seedable normal-distribution sample source and
// a small dense real vector type used to build random rotation matrices.
package gaussian

import (
	"math"
	"math/rand"
)

// Source yields independent samples from N(0,1). Seed is caller-controlled
// so rotation construction is reproducible in tests.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Gaussian sample source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws one value from the standard normal distribution.
func (s *Source) Sample() float32 {
	return float32(s.rng.NormFloat64())
}

// Vector is a finite sequence of single-precision reals.
type Vector struct {
	V []float32
}

// NewVector allocates a zeroed vector of length d.
func NewVector(d int) *Vector {
	return &Vector{V: make([]float32, d)}
}

// Norm returns the Euclidean length of v.
func (v *Vector) Norm() float32 {
	var n float32
	for _, x := range v.V {
		n += x * x
	}
	return float32(math.Sqrt(float64(n)))
}

// Dot returns the inner product of v and u. Panics if u is shorter than v;
// extra coordinates of a longer u are ignored.
func (v *Vector) Dot(u *Vector) float32 {
	var s float32
	for i, x := range v.V {
		s += x * u.V[i]
	}
	return s
}

// Scale multiplies v in place by s.
func (v *Vector) Scale(s float32) {
	for i := range v.V {
		v.V[i] *= s
	}
}

// Sub subtracts u from v in place.
func (v *Vector) Sub(u *Vector) {
	for i := range v.V {
		v.V[i] -= u.V[i]
	}
}

// FillGaussian replaces v's contents with len(v.V) independent samples from src.
func (v *Vector) FillGaussian(src *Source) {
	for i := range v.V {
		v.V[i] = src.Sample()
	}
}
