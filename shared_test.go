package primerforge

import "testing"

func TestResolveSharedKmersIntersectsIngroup(t *testing.T) {
	ingroup := map[string]map[string]KmerLoc{
		"g1": {
			"a": {Seq: "AAAA", Contig: "c1", Start: 0, Length: 4},
			"b": {Seq: "CCCC", Contig: "c1", Start: 10, Length: 4},
		},
		"g2": {
			"a": {Seq: "AAAA", Contig: "c1", Start: 5, Length: 4},
		},
	}
	outgroup := map[string]map[string]struct{}{}

	shared, err := ResolveSharedKmers(ingroup, outgroup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := shared["g1"]["a"]; !ok {
		t.Error("expected key 'a' to survive intersection")
	}
	if _, ok := shared["g1"]["b"]; ok {
		t.Error("expected key 'b' to be dropped (absent from g2)")
	}
}

func TestResolveSharedKmersSubtractsOutgroup(t *testing.T) {
	ingroup := map[string]map[string]KmerLoc{
		"g1": {"a": {Seq: "AAAA", Contig: "c1", Start: 0, Length: 4}},
		"g2": {"a": {Seq: "AAAA", Contig: "c1", Start: 0, Length: 4}},
	}
	outgroup := map[string]map[string]struct{}{
		"o1": {"a": struct{}{}},
	}

	_, err := ResolveSharedKmers(ingroup, outgroup)
	if err == nil {
		t.Fatal("expected an empty-intersection error after outgroup subtraction")
	}
	if !IsKind(err, KindEmptyIntersection) {
		t.Errorf("expected KindEmptyIntersection, got %v", err)
	}
}

func TestResolveSharedKmersEmptyIngroupIntersection(t *testing.T) {
	ingroup := map[string]map[string]KmerLoc{
		"g1": {"a": {Seq: "AAAA", Contig: "c1", Start: 0, Length: 4}},
		"g2": {"b": {Seq: "CCCC", Contig: "c1", Start: 0, Length: 4}},
	}
	_, err := ResolveSharedKmers(ingroup, map[string]map[string]struct{}{})
	if !IsKind(err, KindEmptyIntersection) {
		t.Errorf("expected KindEmptyIntersection, got %v", err)
	}
}
