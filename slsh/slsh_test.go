package slsh

import (
	"testing"

	"github.com/lshkit/slsh/gaussian"
	"github.com/lshkit/slsh/internal/telemetry"
	"github.com/lshkit/slsh/rotation"
	"github.com/lshkit/slsh/vector"
)

// vecFeature adapts a gaussian.Vector to vector.Feature for test purposes.
type vecFeature struct {
	*gaussian.Vector
}

func (f *vecFeature) Similarity(q vector.Feature) float32 { return 0 }
func (f *vecFeature) NCopies() int                        { return 1 }

func TestKClipping(t *testing.T) {
	d := 64 // hbits = ceil(log2(128)) = 7, kmax = floor(64/7) = 9
	src := gaussian.NewSource(1)
	h := New(d, 20, 1, src, telemetry.Nop())

	if h.HBits() != 7 {
		t.Fatalf("HBits() = %d, want 7", h.HBits())
	}
	if h.K() != 9 {
		t.Fatalf("K() = %d, want 9 (floor(64/7))", h.K())
	}
	if !h.Clipped {
		t.Fatalf("expected Clipped to be true")
	}
	if h.RequestedK != 20 {
		t.Fatalf("RequestedK = %d, want 20", h.RequestedK)
	}
}

func TestNoClipWhenWithinBudget(t *testing.T) {
	src := gaussian.NewSource(1)
	h := New(64, 2, 1, src, telemetry.Nop())
	if h.Clipped {
		t.Fatalf("expected no clipping for k=2")
	}
	if h.K() != 2 {
		t.Fatalf("K() = %d, want 2", h.K())
	}
}

func TestArgmaxiInjectiveAcrossSign(t *testing.T) {
	src := gaussian.NewSource(7)
	m := rotation.Build(4, src)

	// A feature exactly aligned with row 0 produces the maximal positive
	// dot on axis 0; its negation produces the maximal negative dot on the
	// same axis. The two must not collide.
	row0 := m.Row(0)
	pos := &vecFeature{Vector: &gaussian.Vector{V: append([]float32(nil), row0.V...)}}
	negV := append([]float32(nil), row0.V...)
	for i := range negV {
		negV[i] = -negV[i]
	}
	neg := &vecFeature{Vector: &gaussian.Vector{V: negV}}

	hp := argmaxi(pos, m)
	hn := argmaxi(neg, m)
	if hp == hn {
		t.Fatalf("argmaxi collided for same axis, opposite sign: %d == %d", hp, hn)
	}
	if hp != 0 {
		t.Fatalf("argmaxi(pos) = %d, want 0 (axis 0, positive)", hp)
	}
	if hn != 1 {
		t.Fatalf("argmaxi(neg) = %d, want 1 (axis 0, negative)", hn)
	}
}

func TestHashDeterministicForIdenticalInput(t *testing.T) {
	src := gaussian.NewSource(3)
	h := New(8, 2, 3, src, telemetry.Nop())

	v := gaussian.NewVector(8)
	v.FillGaussian(gaussian.NewSource(99))
	p := &vecFeature{Vector: v}

	g1 := make([]uint64, h.L())
	g2 := make([]uint64, h.L())
	h.Hash(p, g1)
	h.Hash(p, g2)

	for i := range g1 {
		if g1[i] != g2[i] {
			t.Fatalf("hash not deterministic at table %d: %d != %d", i, g1[i], g2[i])
		}
	}
}

func TestHashLength(t *testing.T) {
	src := gaussian.NewSource(3)
	h := New(8, 2, 5, src, telemetry.Nop())
	v := gaussian.NewVector(8)
	v.FillGaussian(gaussian.NewSource(5))
	p := &vecFeature{Vector: v}

	g := make([]uint64, h.L())
	h.Hash(p, g)
	if len(g) != 5 {
		t.Fatalf("len(g) = %d, want 5", len(g))
	}
}
