package primerforge

import (
	"testing"

	"github.com/evolgen/primerforge/internal/config"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.MinLen, cfg.MaxLen = 16, 20
	cfg.MinGC, cfg.MaxGC = 40.0, 60.0
	cfg.MinTm, cfg.MaxTm = 40.0, 80.0
	cfg.MinProdLen, cfg.MaxProdLen = 16, 2400
	cfg.MaxTmDiff = 10.0
	cfg.NumThreads = 2
	cfg.SetDefaultDisallowedLens()
	return cfg
}

func TestFilterCandidatesAcceptsFirstPassingLength(t *testing.T) {
	cfg := testConfig()
	kmers := map[string]KmerLoc{
		"k16": {Seq: "AAAAAAAAAAAAAAAA", Contig: "c1", Start: 0, Length: 16}, // homopolymer, fails
		"k17": {Seq: "GATCAGTCAGGCTAAGC", Contig: "c1", Start: 0, Length: 17},
	}

	accepted := FilterCandidates(kmers, cfg)
	if len(accepted) != 1 {
		t.Fatalf("expected exactly one accepted primer, got %d", len(accepted))
	}
	if accepted[0].Length != 17 {
		t.Errorf("expected the length-17 candidate to be accepted, got length %d", accepted[0].Length)
	}
}

func TestFilterCandidatesRejectsHomopolymer(t *testing.T) {
	cfg := testConfig()
	kmers := map[string]KmerLoc{
		"k": {Seq: "ACGTAAAACGTACGTAC", Contig: "c1", Start: 0, Length: 17},
	}
	if accepted := FilterCandidates(kmers, cfg); len(accepted) != 0 {
		t.Errorf("expected the homopolymer-containing candidate to be rejected, got %d", len(accepted))
	}
}

func TestFilterCandidatesRejectsOutOfRangeGC(t *testing.T) {
	cfg := testConfig()
	kmers := map[string]KmerLoc{
		"k": {Seq: "AAAAAAAAAAAAAAAAAA", Contig: "c1", Start: 0, Length: 18}, // 0% GC
	}
	if accepted := FilterCandidates(kmers, cfg); len(accepted) != 0 {
		t.Errorf("expected the AT-only candidate to be rejected on GC%%, got %d", len(accepted))
	}
}
