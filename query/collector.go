// Package query implements the bounded top-m candidate collector used by
// LSH.Query to rank points streamed in from probed buckets.
package query

import "github.com/lshkit/slsh/vector"

// Collector keeps the top-limit feature vectors by similarity seen so far,
// with multiplicity-aware accounting. A Collector is transient: one per
// Query call.
type Collector struct {
	limit int

	neighbors    []vector.Feature
	similarities []float32
	ncopies      []int

	found       int // sum of ncopies currently held
	uniques     int // number of distinct entries held, <= limit
	curmin      float32
	curminIndex int
}

// NewCollector creates a collector that retains at most limit unique entries.
func NewCollector(limit int) *Collector {
	return &Collector{
		limit:       limit,
		neighbors:   make([]vector.Feature, 0, limit),
		similarities: make([]float32, 0, limit),
		ncopies:     make([]int, 0, limit),
		curminIndex: -1,
	}
}

// Insert offers a candidate with similarity s and multiplicity n. Candidates
// with n <= 0 are discarded. While fewer than limit uniques are held, every
// candidate is kept; once full, only a candidate strictly more similar than
// the current minimum displaces it.
func (c *Collector) Insert(q vector.Feature, s float32, n int) {
	if n <= 0 || c.limit <= 0 {
		return
	}

	if c.uniques < c.limit {
		c.neighbors = append(c.neighbors, q)
		c.similarities = append(c.similarities, s)
		c.ncopies = append(c.ncopies, n)
		c.found += n
		c.uniques++

		if c.uniques == c.limit {
			c.updateMin()
		}
		return
	}

	if s <= c.curmin {
		return
	}

	c.found -= c.ncopies[c.curminIndex]
	c.neighbors[c.curminIndex] = q
	c.similarities[c.curminIndex] = s
	c.ncopies[c.curminIndex] = n
	c.found += n
	c.updateMin()
}

// updateMin rescans the held entries to find the new minimum-similarity
// slot. The first entry achieving the minimum wins ties (strict < below).
func (c *Collector) updateMin() {
	curmin := c.similarities[0]
	curminIndex := 0
	for i := 1; i < c.uniques; i++ {
		if c.similarities[i] < curmin {
			curmin = c.similarities[i]
			curminIndex = i
		}
	}
	c.curmin = curmin
	c.curminIndex = curminIndex
}

// Shrink removes the query point itself from the held set. The collector is
// constructed with limit = m+1 precisely so the query point can occupy a
// slot without displacing a true neighbor. It finds the entry of maximum
// similarity and, only if its NCopies == 1, swap-removes it; an entry with
// NCopies > 1 represents more than the query point alone and is kept as a
// legitimate neighbor. Only Neighbors may be called after Shrink.
func (c *Collector) Shrink() {
	if c.uniques == 0 {
		return
	}

	curmax := c.similarities[0]
	curmaxIndex := 0
	for i := 1; i < c.uniques; i++ {
		if c.similarities[i] > curmax {
			curmax = c.similarities[i]
			curmaxIndex = i
		}
	}

	if c.ncopies[curmaxIndex] > 1 {
		return
	}

	last := c.uniques - 1
	c.neighbors[curmaxIndex] = c.neighbors[last]
	c.similarities[curmaxIndex] = c.similarities[last]
	c.ncopies[curmaxIndex] = c.ncopies[last]
	c.neighbors = c.neighbors[:last]
	c.similarities = c.similarities[:last]
	c.ncopies = c.ncopies[:last]
	c.uniques = last
}

// Neighbors returns the currently held feature vectors. Order is unspecified.
func (c *Collector) Neighbors() []vector.Feature {
	return c.neighbors
}

// Limit returns the collector's capacity.
func (c *Collector) Limit() int { return c.limit }
