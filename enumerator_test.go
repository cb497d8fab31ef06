package primerforge

import "testing"

func TestEnumerateGenomeUniqueDropsRepeatedKmers(t *testing.T) {
	// "AAAA" (length 4) occurs at positions 0 and 1 in "AAAAACGT" and must
	// be dropped; a length-4 substring appearing exactly once must survive.
	g := Genome{
		Name: "g1",
		Contigs: []Contig{
			{ID: "c1", Seq: []byte("AAAAACGT")},
		},
	}

	unique := EnumerateGenomeUnique(g, 4, 4)
	for _, loc := range unique {
		if loc.Seq == "AAAA" {
			t.Error("expected AAAA to be dropped as non-unique")
		}
	}

	found := false
	for _, loc := range unique {
		if loc.Seq == "AACG" || loc.Seq == "ACGT" {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one singly-occurring 4-mer to survive")
	}
}

func TestEnumerateGenomeUniqueCollapsesStrands(t *testing.T) {
	// An 8-mer and its reverse complement on the same contig should be
	// treated as the same k-mer (spec.md §4.3) and therefore dropped as
	// non-unique. The 8-mer is not its own reverse complement and occurs only
	// once literally, so only strand folding can drop it.
	fwd := "AAACCCGG"
	rc := ReverseComplementString(fwd)
	g := Genome{
		Name: "g1",
		Contigs: []Contig{
			{ID: "c1", Seq: []byte(fwd + "TTTT" + rc)},
		},
	}

	unique := EnumerateGenomeUnique(g, 8, 8)
	key := CanonicalKey([]byte(fwd))
	if _, ok := unique[key]; ok {
		t.Error("expected the strand-doubled 8-mer to be dropped as non-unique")
	}
}

func TestEnumerateGenomePresence(t *testing.T) {
	g := Genome{
		Name: "g1",
		Contigs: []Contig{
			{ID: "c1", Seq: []byte("ACGTACGT")},
		},
	}
	presence := EnumerateGenomePresence(g, 4, 4)
	if _, ok := presence[CanonicalKey([]byte("ACGT"))]; !ok {
		t.Error("expected ACGT to be present")
	}
	if _, ok := presence[CanonicalKey([]byte("TTTT"))]; ok {
		t.Error("did not expect TTTT to be present")
	}
}
