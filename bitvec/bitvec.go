// Package bitvec provides a concrete vector.Feature implementation: a
// packed 64-bit vector whose set bit i denotes membership in orthant axis i.
// It is a ready-to-use feature type for callers who don't need a custom
// representation, and it backs the tests and the lshbench benchmark CLI.
package bitvec

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/lshkit/slsh/gaussian"
	"github.com/lshkit/slsh/vector"
)

// BitVector64 packs 64 boolean coordinates into one machine word, plus an
// optional copy-multiplicity for dedup-aware scoring. Always insert a
// pointer to one of these: the index keys its hash cache by Feature
// reference identity, and *BitVector64 gives that for free in Go.
type BitVector64 struct {
	Bits   uint64
	Copies int // 0 means "unset", treated as 1 by NCopies
}

// New wraps bits with the default multiplicity of 1.
func New(v uint64) *BitVector64 {
	return &BitVector64{Bits: v, Copies: 1}
}

// NewWithCopies wraps bits with an explicit multiplicity n.
func NewWithCopies(v uint64, n int) *BitVector64 {
	return &BitVector64{Bits: v, Copies: n}
}

// Dot sums u's coordinates selected by the set bits of v. Performance
// matters here: this is called Θ(d·k·L) times per Insert/Query.
func (v *BitVector64) Dot(u *gaussian.Vector) float32 {
	var sum float32
	w := v.Bits
	for i := 0; w != 0 && i < 64; i, w = i+1, w>>1 {
		if w&1 == 1 {
			sum += u.V[i]
		}
	}
	return sum
}

// Similarity is popcount(v AND q) / sqrt(popcount(v) * popcount(q)), which
// is cosine similarity between the two vectors' {0,1} coordinate encodings.
func (v *BitVector64) Similarity(q vector.Feature) float32 {
	other := q.(*BitVector64)
	dot := float32(bits.OnesCount64(v.Bits & other.Bits))
	norm := float32(bits.OnesCount64(v.Bits)) * float32(bits.OnesCount64(other.Bits))
	if norm == 0 {
		return 0
	}
	return dot / float32(math.Sqrt(float64(norm)))
}

// NCopies returns the wrapped multiplicity, defaulting to 1.
func (v *BitVector64) NCopies() int {
	if v.Copies <= 0 {
		return 1
	}
	return v.Copies
}

// String renders v as a base-2 string, for debugging only.
func (v *BitVector64) String() string {
	return strconv.FormatUint(v.Bits, 2)
}

var _ vector.Feature = (*BitVector64)(nil)
