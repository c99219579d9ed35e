package bitvec

import (
	"math"
	"testing"

	"github.com/lshkit/slsh/gaussian"
)

func TestSimilarityKnownValues(t *testing.T) {
	a := New(0xFFFFFFFFFFFFFFFF)
	b := New(0x00000000FFFFFFFF)
	c := New(0xFFFFFFFF00000000)

	// b and c share no set bits.
	if s := b.Similarity(c); s != 0 {
		t.Fatalf("Similarity(disjoint) = %v, want 0", s)
	}

	// a shares all 32 bits of b, popcount(a)=64, popcount(b)=32.
	got := a.Similarity(b)
	want := float32(32) / float32(math.Sqrt(64*32))
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Fatalf("Similarity(a,b) = %v, want %v", got, want)
	}
}

func TestZeroVectorSimilarityIsZero(t *testing.T) {
	zero := New(0)
	other := New(0xFF)
	if s := zero.Similarity(other); s != 0 {
		t.Fatalf("Similarity with zero vector = %v, want 0", s)
	}
}

func TestNCopiesDefaultsToOne(t *testing.T) {
	v := New(1)
	if v.NCopies() != 1 {
		t.Fatalf("NCopies() = %d, want 1", v.NCopies())
	}

	neg := NewWithCopies(1, -3)
	if neg.NCopies() != 1 {
		t.Fatalf("NCopies() for non-positive Copies = %d, want 1 (defaulted)", neg.NCopies())
	}

	explicit := NewWithCopies(1, 4)
	if explicit.NCopies() != 4 {
		t.Fatalf("NCopies() = %d, want 4", explicit.NCopies())
	}
}

func TestDotSumsSelectedCoordinates(t *testing.T) {
	v := New(0b101) // bits 0 and 2 set
	u := &gaussian.Vector{V: []float32{1, 2, 3, 4}}
	got := v.Dot(u)
	want := float32(1 + 3)
	if got != want {
		t.Fatalf("Dot() = %v, want %v", got, want)
	}
}
