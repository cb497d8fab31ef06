package primerforge

import (
	"strconv"
	"strings"
	"testing"
)

func buildOutgroupFixture(fillerLen int) (contigSeq string, fwdSeq string, revStoredSeq string, product int) {
	fwdSeq = "AAAACCCC"
	revBindingSeq := "CCCCAAAA" // literal genomic sequence at the rev-primer binding site
	revStoredSeq = ReverseComplementString(revBindingSeq)

	filler := strings.Repeat("GT", fillerLen/2)
	contigSeq = fwdSeq + filler + revBindingSeq

	r0 := len(fwdSeq) + len(filler)
	product = r0 + len(revBindingSeq) - 0
	return
}

func TestEliminateOutgroupRejectsDisallowedLength(t *testing.T) {
	cfg := testConfig()
	cfg.MinLen, cfg.MaxLen = 8, 8

	contigOut1, fwdSeq, revStoredSeq, product1 := buildOutgroupFixture(34)
	cfg.DisallowedLens = map[int]bool{product1: true}

	pair := ValidatedPair{
		Fwd:      NewPrimer(fwdSeq, "c1", 0, 8),
		Rev:      NewPrimer(revStoredSeq, "c1", 999, 8),
		Products: map[string]IngroupProduct{"g1": {Contig: "c1", Length: 100}},
	}

	outgroup := []Genome{
		{Name: "out1", Contigs: []Contig{{ID: "oc1", Seq: []byte(contigOut1)}}},
	}

	_, err := EliminateOutgroup([]ValidatedPair{pair}, outgroup, cfg)
	if !IsKind(err, KindNoPairsSurvive) {
		t.Errorf("expected KindNoPairsSurvive, got %v", err)
	}
}

func TestEliminateOutgroupKeepsAllowedLength(t *testing.T) {
	cfg := testConfig()
	cfg.MinLen, cfg.MaxLen = 8, 8

	contigOut1, fwdSeq, revStoredSeq, product1 := buildOutgroupFixture(34)
	cfg.DisallowedLens = map[int]bool{999999: true} // never occurs

	pair := ValidatedPair{
		Fwd:      NewPrimer(fwdSeq, "c1", 0, 8),
		Rev:      NewPrimer(revStoredSeq, "c1", 999, 8),
		Products: map[string]IngroupProduct{"g1": {Contig: "c1", Length: 100}},
	}

	outgroup := []Genome{
		{Name: "out1", Contigs: []Contig{{ID: "oc1", Seq: []byte(contigOut1)}}},
	}

	out, err := EliminateOutgroup([]ValidatedPair{pair}, outgroup, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 resolved pair, got %d", len(out))
	}
	wantLen := strconv.Itoa(product1)
	if out[0].OutgroupLength["out1"] != wantLen {
		t.Errorf("OutgroupLength[out1] = %s, want %s", out[0].OutgroupLength["out1"], wantLen)
	}
	if out[0].OutgroupContig["out1"] != "oc1" {
		t.Errorf("OutgroupContig[out1] = %s, want oc1", out[0].OutgroupContig["out1"])
	}
}

func TestOutgroupProductSizesHandlesReversedOrientation(t *testing.T) {
	// Neither primer's literal sequence occurs directly in this contig; only
	// the "reversed" orientation (fwd read via its reverse complement,
	// downstream of rev's literal binding site) resolves, which exercises
	// the function's fallback branch.
	fwd := NewPrimer("AAAACCCC", "c1", 0, 8)
	rev := NewPrimer(ReverseComplementString("CCCCAAAA"), "c1", 0, 8)

	index := map[string][]int{
		ReverseComplementString(fwd.Seq): {50}, // fwd's binding site, read on the other strand
		rev.Seq:                          {0},  // rev's own stored (already reverse-complemented) sequence
	}

	sizes := outgroupProductSizes(index, fwd, rev)
	if len(sizes) != 1 {
		t.Fatalf("expected exactly one product size, got %v", sizes)
	}
	want := 50 + len(fwd.Seq) - 0
	if sizes[0] != want {
		t.Errorf("product size = %d, want %d", sizes[0], want)
	}
}
