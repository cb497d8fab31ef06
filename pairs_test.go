package primerforge

import "testing"

func TestHasDimerDetectsHighIdentity(t *testing.T) {
	a := []byte("ACGTACGTACGTACGT")
	b := []byte("ACGTACGTACGTACGT")
	if !hasDimer(a, b) {
		t.Error("expected two identical sequences to be flagged as a dimer risk")
	}
}

func TestHasDimerAllowsDissimilarSequences(t *testing.T) {
	a := []byte("AAAAAAAAAAAAAAAA")
	b := []byte("GCGCGCGCGCGCGCGC")
	if hasDimer(a, b) {
		t.Error("did not expect two fully dissimilar sequences to be flagged")
	}
}

func TestEvaluateBinPairAcceptsValidGeometry(t *testing.T) {
	cfg := testConfig()
	cfg.MinProdLen, cfg.MaxProdLen = 10, 200

	fwd := NewPrimer("GATCAGTCAGGCTAAGC", "c1", 0, 17)     // ends in C: 3' GC
	rev := NewPrimer("GTGTGTGTGTGTGTGTG", "c1", 100, 17) // starts with G: 5' GC, unrelated sequence

	a := newBin([]Primer{fwd})
	b := newBin([]Primer{rev})

	pair, ok := evaluateBinPair(a, b, cfg)
	if !ok {
		t.Fatal("expected a valid pair to be accepted")
	}
	if pair.Fwd.Start != 0 || pair.Rev.Start != 100 {
		t.Errorf("unexpected pair geometry: fwd.Start=%d rev.Start=%d", pair.Fwd.Start, pair.Rev.Start)
	}
	wantLen := rev.InclusiveEnd() - fwd.Start + 1
	if pair.ProductLength != wantLen {
		t.Errorf("ProductLength = %d, want %d", pair.ProductLength, wantLen)
	}
}

func TestEvaluateBinPairRejectsOutOfRangeProduct(t *testing.T) {
	cfg := testConfig()
	cfg.MinProdLen, cfg.MaxProdLen = 1000, 2000

	fwd := NewPrimer("GATCAGTCAGGCTAAGC", "c1", 0, 17)
	rev := NewPrimer("GTGTGTGTGTGTGTGTG", "c1", 100, 17)

	a := newBin([]Primer{fwd})
	b := newBin([]Primer{rev})

	if _, ok := evaluateBinPair(a, b, cfg); ok {
		t.Error("expected the pair to be rejected for product length out of range")
	}
}
