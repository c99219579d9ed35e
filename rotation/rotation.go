// Package rotation builds random orthonormal bases of R^d via classical
// Gram-Schmidt orthonormalization applied to Gaussian starting vectors,
// yielding a rotation drawn from the Haar measure on O(d) with probability 1.
package rotation

import "github.com/lshkit/slsh/gaussian"

// Matrix is an ordered orthonormal basis of R^d: d rows, each a unit vector.
// Once built it is immutable; the hasher reads rows without locking.
type Matrix struct {
	rows []*gaussian.Vector
}

// Row returns the i-th basis vector. For an SLSH orthoplex, rotated vertex i
// of the cross-polytope is exactly this row.
func (m *Matrix) Row(i int) *gaussian.Vector {
	return m.rows[i]
}

// Dim returns the dimension d of the basis.
func (m *Matrix) Dim() int {
	return len(m.rows)
}

// Build runs Gram-Schmidt on d freshly-sampled Gaussian vectors. If any
// intermediate vector norm is exactly zero (a numerically-degenerate draw),
// the whole procedure restarts from scratch.
//
// The projection scale here uses the conventional t = dot/||v||^2, not the
// t = dot/||v|| some published implementations of this algorithm use; both
// yield a valid basis since the final per-row normalization absorbs any
// leftover scale, but the conventional form keeps intermediate magnitudes
// sane for larger d.
func Build(d int, src *gaussian.Source) *Matrix {
	rows := make([]*gaussian.Vector, d)
	for i := 0; i < d; i++ {
		u := gaussian.NewVector(d)
		u.FillGaussian(src)
		rows[i] = u
	}

	for i := 0; i < d; i++ {
		u := rows[i]
		for j := 0; j < i; j++ {
			v := rows[j]
			vnormSq := v.Dot(v)
			if vnormSq == 0 {
				return Build(d, src)
			}
			t := v.Dot(u) / vnormSq
			proj := &gaussian.Vector{V: append([]float32(nil), v.V...)}
			proj.Scale(t)
			u.Sub(proj)
		}
		n := u.Norm()
		if n == 0 {
			return Build(d, src)
		}
		u.Scale(1.0 / n)
	}

	return &Matrix{rows: rows}
}
