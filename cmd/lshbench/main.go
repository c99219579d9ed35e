// Command lshbench exercises the lsh index end to end: it inserts a random
// corpus of packed bit vectors, runs a batch of queries against it, and
// reports timing, linear-search and neighbor-count statistics. It is a CLI companion to the
// library, not part of the core packages.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lshkit/slsh"
	"github.com/lshkit/slsh/bitvec"
	"github.com/lshkit/slsh/vector"
)

var (
	dimension int
	numHashes int
	numTables int
	topM      int
	numPoints int
	numQuery  int
	seed      int64
	badFrac   float64
)

var rootCmd = &cobra.Command{
	Use:   "lshbench",
	Short: "Benchmark harness for the SLSH approximate nearest-neighbor index",
	Long:  "lshbench drives Insert and Query against a packed 64-bit-vector corpus and reports timing, linear-search and neighbor-count statistics.",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Insert a random corpus and query it",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New().String()
		fmt.Printf("run %s: d=%d k=%d L=%d points=%d queries=%d seed=%d\n",
			runID, dimension, numHashes, numTables, numPoints, numQuery, seed)

		idx, err := lsh.New(dimension, numHashes, numTables, lsh.WithSeed(seed))
		if err != nil {
			return fmt.Errorf("building index: %w", err)
		}
		if idx.Clipped() {
			fmt.Printf("k clipped to %d\n", idx.K())
		}

		rng := rand.New(rand.NewSource(seed))
		points := make([]*bitvec.BitVector64, numPoints)
		features := make([]vector.Feature, numPoints)
		for i := range points {
			points[i] = bitvec.New(rng.Uint64())
			features[i] = points[i]
		}

		start := time.Now()
		idx.Insert(features)
		fmt.Printf("insert: %v for %d points\n", time.Since(start), numPoints)

		var totalLinear, totalFound int
		var badLinear int
		threshold := float64(numPoints) * badFrac

		start = time.Now()
		for i := 0; i < numQuery; i++ {
			p := points[i%numPoints]
			neighbors, linear := idx.QueryWithStats(p, topM)
			totalLinear += linear
			totalFound += len(neighbors)
			if float64(linear) > threshold {
				badLinear++
			}
		}
		elapsed := time.Since(start)

		fmt.Printf("query: %v total, %v/op\n", elapsed, elapsed/time.Duration(numQuery))
		fmt.Printf("avg linear-search size: %.2f\n", float64(totalLinear)/float64(numQuery))
		fmt.Printf("avg neighbors found: %.2f\n", float64(totalFound)/float64(numQuery))
		fmt.Printf("queries with linear-search > %.1f%% of corpus: %d (%.2f%%)\n",
			badFrac*100, badLinear, 100*float64(badLinear)/float64(numQuery))

		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&dimension, "d", 64, "feature-space dimension")
	runCmd.Flags().IntVar(&numHashes, "k", 6, "elementary hashes per table")
	runCmd.Flags().IntVar(&numTables, "L", 2, "number of bucket tables")
	runCmd.Flags().IntVar(&topM, "m", 10, "neighbors requested per query")
	runCmd.Flags().IntVar(&numPoints, "points", 100000, "corpus size")
	runCmd.Flags().IntVar(&numQuery, "queries", 100000, "number of queries to run")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	runCmd.Flags().Float64Var(&badFrac, "bad-linear-fraction", 0.01, "linear-search fraction considered bad")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
