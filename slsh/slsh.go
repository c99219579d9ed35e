// Package slsh implements Spherical Locality-Sensitive Hashing: hashing a
// point by projecting it onto a randomly rotated d-dimensional cross-polytope
// (orthoplex) and returning the index of the vertex most aligned with the
// projection.
//
// Terasawa, K., Tanaka, Y., 2007. Spherical LSH for Approximate
// Nearest-Neighbor Search on Unit Hypersphere. Springer. pp. 27-38.
package slsh

import (
	"math"

	"github.com/lshkit/slsh/gaussian"
	"github.com/lshkit/slsh/internal/telemetry"
	"github.com/lshkit/slsh/rotation"
	"github.com/lshkit/slsh/vector"
)

// HashWordBits is the fixed width W of a compound hash word.
const HashWordBits = 64

// Hasher computes a k*L compound hash for a feature vector using rotated
// orthoplex vertices. Built once; the rotation matrices it holds are never
// mutated afterward.
type Hasher struct {
	d, k, l int
	hbits   uint
	// rotations has length k*l; rotations[ri] is consulted in row-major
	// (table, elementary-hash) order exactly as Hash walks it.
	rotations []*rotation.Matrix

	// RequestedK is the k the caller asked for, prior to clipping.
	RequestedK int
	// Clipped is true if construction clamped k down to KMax().
	Clipped bool
}

// New constructs a Hasher for dimension d, k elementary hashes per table,
// and L tables, drawing rotation matrices from src. If k exceeds
// floor(HashWordBits/hbits) it is clipped and logger.Warn is
// called once to report the adjustment; pass telemetry.Nop() to suppress.
func New(d, k, l int, src *gaussian.Source, logger telemetry.Logger) *Hasher {
	if logger == nil {
		logger = telemetry.Nop()
	}

	hbits := hbitsFor(d)
	kmax := int(HashWordBits / hbits)

	h := &Hasher{
		d:          d,
		k:          k,
		l:          l,
		hbits:      hbits,
		RequestedK: k,
	}

	if k > kmax {
		h.k = kmax
		h.Clipped = true
		logger.Warn("slsh: k too large, clipping", "requested_k", k, "clipped_k", kmax, "hbits", hbits)
	}

	h.rotations = make([]*rotation.Matrix, h.k*h.l)
	for i := range h.rotations {
		h.rotations[i] = rotation.Build(d, src)
	}

	return h
}

// hbitsFor returns ceil(log2(2d)), the bit width of one elementary hash.
func hbitsFor(d int) uint {
	nvertex := 2.0 * float64(d)
	return uint(math.Ceil(math.Log2(nvertex)))
}

// K returns the (possibly clipped) number of elementary hashes per table.
func (h *Hasher) K() int { return h.k }

// L returns the number of tables.
func (h *Hasher) L() int { return h.l }

// HBits returns the bit width of one elementary hash.
func (h *Hasher) HBits() uint { return h.hbits }

// argmaxi projects p onto every rotated axis in m and returns the axis/sign
// encoding of the one with largest |dot|. Ties (a non-strictly-larger |dot|)
// keep the lower index, matching the reference implementation.
//
// The encoding is 2*i for a non-negative dot and 2*i+1 for a negative one.
// A naive i / 2*i encoding (as seen in some published implementations of
// this algorithm) collides: i=0 positive and i=0 negative both map to 0, and
// i=2 positive collides with i=1 negative. 2*i/2*i+1 is injective and is
// what this package uses.
func argmaxi(p vector.Feature, m *rotation.Matrix) int {
	maxi := 0
	var max float32
	sign := 0

	for i := 0; i < m.Dim(); i++ {
		dot := p.Dot(m.Row(i))
		abs := dot
		if abs < 0 {
			abs = -abs
		}
		if abs <= max {
			continue
		}
		max = abs
		maxi = i
		if dot >= 0 {
			sign = 0
		} else {
			sign = 1
		}
	}

	return 2*maxi + sign
}

// Hash fills g (length L) with the compound hash of p. g must already be
// allocated with len(g) == h.L().
func (h *Hasher) Hash(p vector.Feature, g []uint64) {
	ri := 0
	for i := 0; i < h.l; i++ {
		var gi uint64
		for j := 0; j < h.k; j++ {
			hv := argmaxi(p, h.rotations[ri])
			gi |= uint64(hv) << (h.hbits * uint(j))
			ri++
		}
		g[i] = gi
	}
}
