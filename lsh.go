package lsh

import (
	"github.com/lshkit/slsh/gaussian"
	"github.com/lshkit/slsh/index"
	"github.com/lshkit/slsh/internal/telemetry"
	"github.com/lshkit/slsh/slsh"
	"github.com/lshkit/slsh/vector"
)

// Index is the public façade over an SLSH hasher and its LSH bucket
// structure: construct once with New, populate with Insert, then Query
// individual points. There is no threading contract beyond what index.LSH
// and slsh.Hasher document.
type Index struct {
	hasher *slsh.Hasher
	idx    *index.LSH
}

// config holds the options New accepts.
type config struct {
	seed   int64
	logger telemetry.Logger
}

// Option configures New.
type Option func(*config)

// WithSeed sets the Gaussian source seed used to build rotation matrices.
// Defaults to 1 if not given; pass a fixed seed for reproducible tests, or a
// time-derived one for production randomness.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger attaches a logger for k-clipping warnings and insert/query
// diagnostics. Defaults to a no-op logger.
func WithLogger(logger telemetry.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New constructs an SLSH hasher for dimension d with k elementary hashes per
// table and L tables, then builds an empty LSH index over it. If k exceeds
// the word-width budget it is clipped and a warning goes to the configured
// logger; inspect Clipped and K to observe that.
func New(d, k, l int, opts ...Option) (*Index, error) {
	if d <= 0 {
		return nil, wrapError("New", ErrInvalidDimension)
	}
	if k <= 0 || l <= 0 {
		return nil, wrapError("New", ErrInvalidParams)
	}

	cfg := &config{seed: 1, logger: telemetry.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	src := gaussian.NewSource(cfg.seed)
	hasher := slsh.New(d, k, l, src, cfg.logger)
	idx := index.New(hasher, index.WithLogger(cfg.logger))

	return &Index{hasher: hasher, idx: idx}, nil
}

// Insert bulk-inserts points. Re-inserting an already-present feature vector
// is a precondition violation and panics.
func (ix *Index) Insert(points []vector.Feature) {
	ix.idx.Insert(points)
}

// Query returns up to m neighbors of p, ordered arbitrarily. p must have
// been Inserted previously, or Query silently returns nil.
func (ix *Index) Query(p vector.Feature, m int) []vector.Feature {
	return ix.idx.Query(p, m, nil)
}

// QueryWithStats is Query, but also reports how many candidates were
// scanned linearly across the probed buckets.
func (ix *Index) QueryWithStats(p vector.Feature, m int) (neighbors []vector.Feature, linearSearchSize int) {
	neighbors = ix.idx.Query(p, m, &linearSearchSize)
	return neighbors, linearSearchSize
}

// Len returns the number of distinct feature vectors currently inserted.
func (ix *Index) Len() int { return ix.idx.Len() }

// K returns the (possibly clipped) number of elementary hashes per table.
func (ix *Index) K() int { return ix.hasher.K() }

// L returns the number of bucket tables.
func (ix *Index) L() int { return ix.hasher.L() }

// Clipped reports whether the requested k was clipped down at construction.
func (ix *Index) Clipped() bool { return ix.hasher.Clipped }
