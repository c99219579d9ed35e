// Package lsh provides approximate nearest-neighbor search over
// high-dimensional feature vectors using Locality-Sensitive Hashing, with a
// Spherical-LSH hasher built on rotated cross-polytope (orthoplex) vertices.
//
// Terasawa, K., Tanaka, Y., 2007. Spherical LSH for Approximate
// Nearest-Neighbor Search on Unit Hypersphere. Springer. pp. 27-38.
// A. Gionis, P. Indyk and R. Motwani, "Similarity Search in High Dimensions
// via Hashing", Proc. 25th VLDB, 1999, pp.518-529.
//
// # Quick Start
//
//	idx, err := lsh.New(64, 6, 2, lsh.WithSeed(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	points := []vector.Feature{bitvec.New(0xFF00FF00FF00FF00)}
//	idx.Insert(points)
//
//	neighbors := idx.Query(points[0], 10)
//
// The index is purely in-memory, single-threaded, and does not support
// deletion or re-hashing of already-inserted points. It borrows the
// caller's feature-vector storage by reference and never frees it; the
// caller's storage must outlive the index.
//
// # Observability
//
// Pass WithLogger to surface k-clipping warnings and insert/query
// diagnostics through the internal/telemetry.Logger interface.
package lsh
