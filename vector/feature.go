// Package vector defines the capability contract feature vectors must
// satisfy to be hashed and ranked by this module. It intentionally carries
// no concrete implementation; see the bitvec package for one.
package vector

import "github.com/lshkit/slsh/gaussian"

// Feature is the abstract capability set the hasher and the query collector
// consume. Implementations are expected to be pointer types: the index uses
// Feature values as cache keys under reference identity, which for a pointer
// dynamic type is exactly Go's built-in interface-value equality.
type Feature interface {
	// Dot returns the inner product of the feature vector with a dense
	// vector of equal dimension. Performance-critical: called Θ(d·k·L)
	// times per Insert and per Query.
	Dot(u *gaussian.Vector) float32

	// Similarity returns a symmetric similarity with q; larger means more
	// similar. For SLSH soundness it must be consistent with cosine
	// similarity on the unit hypersphere.
	Similarity(q Feature) float32

	// NCopies returns the multiplicity of this instance. Candidates with
	// NCopies() <= 0 are dropped by the query collector.
	NCopies() int
}
