// Package index implements the bucketed multi-table structure that realizes
// amplified LSH: L bucket tables plus a per-point hash cache, with Insert and
// Query as the only two operations.
//
// A. Gionis, P. Indyk and R. Motwani, "Similarity Search in High Dimensions
// via Hashing", Proc. 25th VLDB, 1999, pp.518-529.
package index

import (
	"fmt"
	"slices"

	"github.com/lshkit/slsh/internal/telemetry"
	"github.com/lshkit/slsh/query"
	"github.com/lshkit/slsh/vector"
)

// Hasher is the capability the index needs from a hash family: fill an
// L-length hash tuple for a feature vector.
type Hasher interface {
	Hash(p vector.Feature, g []uint64)
	L() int
}

// LSH owns L bucket tables and a hash cache. It borrows feature-vector
// storage by reference (Feature values must be pointer-identity-comparable)
// and never frees it; the caller owns that storage and must keep it alive
// for the lifetime of the index.
//
// LSH is not safe for concurrent mutation. Concurrent read-only Query after
// every Insert has returned is safe, since bins and cache are never modified
// by Query.
type LSH struct {
	l      int
	hasher Hasher
	bins   []map[uint64][]vector.Feature
	cache  map[vector.Feature][]uint64
	logger telemetry.Logger
}

// Option configures an LSH index at construction.
type Option func(*LSH)

// WithLogger attaches a logger for Insert/Query diagnostics.
func WithLogger(logger telemetry.Logger) Option {
	return func(x *LSH) { x.logger = logger }
}

// New constructs an index over hasher, with L empty bucket tables and an
// empty hash cache.
func New(hasher Hasher, opts ...Option) *LSH {
	l := hasher.L()
	bins := make([]map[uint64][]vector.Feature, l)
	for i := range bins {
		bins[i] = make(map[uint64][]vector.Feature)
	}

	x := &LSH{
		l:      l,
		hasher: hasher,
		bins:   bins,
		cache:  make(map[vector.Feature][]uint64),
		logger: telemetry.Nop(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Insert bulk-inserts points. Re-inserting a feature vector already present
// in the cache is a precondition violation and panics; this mirrors the
// assertion the reference implementation makes, not a recoverable error.
func (x *LSH) Insert(points []vector.Feature) {
	for _, p := range points {
		if _, ok := x.cache[p]; ok {
			panic(fmt.Sprintf("index: duplicate insert of feature vector %p", p))
		}

		g := make([]uint64, x.l)
		x.hasher.Hash(p, g)
		x.cache[p] = g

		for i := 0; i < x.l; i++ {
			x.bins[i][g[i]] = append(x.bins[i][g[i]], p)
		}
	}

	// Memory hygiene: compact each bucket's backing storage to its current
	// size now that the batch is done growing it. No correctness effect.
	for i := 0; i < x.l; i++ {
		for h, bucket := range x.bins[i] {
			x.bins[i][h] = slices.Clip(bucket)
		}
	}

	x.logger.Debug("index: inserted batch", "n", len(points), "cache_size", len(x.cache))
}

// Query returns up to m neighbors of p, ordered arbitrarily. p must have
// been Inserted previously; otherwise Query silently returns nil. If
// linearSearchSize is non-nil, the number of candidates scanned linearly
// across all L buckets is added to it (accumulating across calls).
func (x *LSH) Query(p vector.Feature, m int, linearSearchSize *int) []vector.Feature {
	g, ok := x.cache[p]
	if !ok {
		return nil
	}

	c := query.NewCollector(m + 1)

	scanned := 0
	for i := 0; i < x.l; i++ {
		bucket := x.bins[i][g[i]]
		scanned += len(bucket)
		for _, q := range bucket {
			c.Insert(q, p.Similarity(q), q.NCopies())
		}
	}
	if linearSearchSize != nil {
		*linearSearchSize += scanned
	}

	c.Shrink()
	neighbors := c.Neighbors()
	x.logger.Debug("index: query", "m", m, "scanned", scanned, "found", len(neighbors))
	return neighbors
}

// Len returns the number of distinct feature vectors currently inserted.
func (x *LSH) Len() int { return len(x.cache) }
