package primerforge

import (
	"strings"
	"testing"

	"github.com/evolgen/primerforge/internal/config"
)

// TestRunEndToEndSharedPairSurvivesOutgroup builds two ingroup genomes that
// share one primer pair (same contig layout, verified clean of the C5
// biochemistry rejections by hand) and an outgroup genome built entirely
// from A/T bases, which cannot contain either primer (both contain G/C) and
// so must leave the pair with a null outgroup product.
func TestRunEndToEndSharedPairSurvivesOutgroup(t *testing.T) {
	fwdSeq := "GATCAGTCAGGCTAAGC"         // verified: GC ~53%, no homopolymer run, no internal revcomp repeat
	revBindingSeq := "CGAATCGGACTGACTAG" // verified: GC ~53%, no homopolymer run, no internal revcomp repeat, and not fwdSeq's reverse complement (so the two keep distinct canonical keys)

	filler := strings.Repeat("AT", 66) + "A" // 133 bases, alternating so never a 4-run, 0% GC so rejected by the GC filter
	contig := fwdSeq + filler + revBindingSeq
	revStart := len(fwdSeq) + len(filler)
	wantProductLen := revStart + len(revBindingSeq) - 0

	g1 := Genome{Name: "g1", Contigs: []Contig{{ID: "c1", Seq: []byte(contig)}}}
	g2 := Genome{Name: "g2", Contigs: []Contig{{ID: "c1", Seq: []byte(contig)}}}

	outContig := strings.Repeat("AT", 100) // pure A/T: cannot contain either G/C-bearing primer
	out1 := Genome{Name: "out1", Contigs: []Contig{{ID: "oc1", Seq: []byte(outContig)}}}

	cfg := config.New()
	cfg.Ingroup = []string{"g1", "g2"}
	cfg.Out = "unused"
	cfg.MinLen, cfg.MaxLen = 17, 17
	cfg.MinGC, cfg.MaxGC = 40, 60
	cfg.MinTm, cfg.MaxTm = 0, 120
	cfg.MinProdLen, cfg.MaxProdLen = 100, 300
	cfg.MaxTmDiff = 20
	cfg.NumThreads = 2
	cfg.SetDefaultDisallowedLens()

	resolved, err := Run([]Genome{g1, g2}, []Genome{out1}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found *ResolvedPair
	for i := range resolved {
		if resolved[i].Fwd.Start == 0 && resolved[i].Fwd.Seq == fwdSeq {
			found = &resolved[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("expected the constructed shared pair to survive the pipeline; got %d pairs", len(resolved))
	}

	if found.Rev.Start != revStart {
		t.Errorf("Rev.Start = %d, want %d", found.Rev.Start, revStart)
	}
	if g1Product := found.Ingroup["g1"]; g1Product.Length != wantProductLen {
		t.Errorf("Ingroup[g1].Length = %d, want %d", g1Product.Length, wantProductLen)
	}
	if g2Product := found.Ingroup["g2"]; g2Product.Length != wantProductLen {
		t.Errorf("Ingroup[g2].Length = %d, want %d", g2Product.Length, wantProductLen)
	}
	if found.OutgroupContig["out1"] != "NA" || found.OutgroupLength["out1"] != "0" {
		t.Errorf("expected a null outgroup product, got contig=%s length=%s",
			found.OutgroupContig["out1"], found.OutgroupLength["out1"])
	}
}

// TestRunEmptyIngroupIntersectionFails exercises the C4 empty-intersection
// failure path: two ingroup genomes that share no candidate k-mers at all.
func TestRunEmptyIngroupIntersectionFails(t *testing.T) {
	g1 := Genome{Name: "g1", Contigs: []Contig{{ID: "c1", Seq: []byte("GATCAGTCAGGCTAAGC")}}}
	g2 := Genome{Name: "g2", Contigs: []Contig{{ID: "c1", Seq: []byte("TTTTTTTTTTTTTTTTT")}}}

	cfg := config.New()
	cfg.Ingroup = []string{"g1", "g2"}
	cfg.Out = "unused"
	cfg.MinLen, cfg.MaxLen = 17, 17
	cfg.SetDefaultDisallowedLens()

	_, err := Run([]Genome{g1, g2}, nil, cfg)
	if !IsKind(err, KindEmptyIntersection) {
		t.Errorf("expected KindEmptyIntersection, got %v", err)
	}
}

func TestRunRequiresAtLeastOneIngroupGenome(t *testing.T) {
	cfg := config.New()
	cfg.SetDefaultDisallowedLens()
	_, err := Run(nil, nil, cfg)
	if !IsKind(err, KindInvalidInput) {
		t.Errorf("expected KindInvalidInput, got %v", err)
	}
}
