package primerforge

// KmerLoc is the genomic location of a retained k-mer occurrence
// (spec.md §3 "K-mer occurrence", §4.3).
type KmerLoc struct {
	Seq    string
	Contig string
	Start  int
	Length int
}

// EnumerateGenomeUnique produces every substring of length in
// [minLen, maxLen] at every start position of every contig in g, and
// returns only those whose canonical (strand-folded) key occurs exactly
// once across the whole genome (spec.md §4.3). The map is keyed by the
// canonical (strand-folded) sequence so that C4 can intersect/subtract key
// sets across genomes regardless of which strand a candidate was read
// from; each entry's KmerLoc.Seq carries the literal forward-strand
// sequence actually observed at that location, which is what feeds
// Primer.Seq downstream (spec.md §3).
//
// Complexity is O(|genome| * (maxLen-minLen+1)) time, with memory
// proportional to the number of distinct canonical k-mers seen
// (spec.md §4.3), grounded on the teacher's per-contig sliding iterator in
// iterator.go, generalized here from a single fixed k to a length range and
// from 2-bit codes to raw sequences because C5's KMP/minimizer checks need
// the literal bytes.
func EnumerateGenomeUnique(g Genome, minLen, maxLen int) map[string]KmerLoc {
	counts := make(map[string]int)
	locs := make(map[string]KmerLoc)

	for _, contig := range g.Contigs {
		n := len(contig.Seq)
		for length := minLen; length <= maxLen; length++ {
			if length > n {
				continue
			}
			for start := 0; start+length <= n; start++ {
				sub := contig.Seq[start : start+length]
				canon := CanonicalKey(sub)
				counts[canon]++
				if _, seen := locs[canon]; !seen {
					locs[canon] = KmerLoc{
						Seq:    string(sub),
						Contig: contig.ID,
						Start:  start,
						Length: length,
					}
				}
			}
		}
	}

	out := make(map[string]KmerLoc, len(locs))
	for canon, n := range counts {
		if n == 1 {
			out[canon] = locs[canon]
		}
	}
	return out
}

// EnumerateGenomePresence returns the set of canonical k-mer keys present
// anywhere in g, without any uniqueness requirement (spec.md §4.4, used for
// the outgroup side of the shared-kmer resolver). Keys fold both strands so
// that a forward-strand ingroup candidate correctly matches an outgroup
// occurrence on either strand.
func EnumerateGenomePresence(g Genome, minLen, maxLen int) map[string]struct{} {
	out := make(map[string]struct{})
	for _, contig := range g.Contigs {
		n := len(contig.Seq)
		for length := minLen; length <= maxLen; length++ {
			if length > n {
				continue
			}
			for start := 0; start+length <= n; start++ {
				sub := contig.Seq[start : start+length]
				out[CanonicalKey(sub)] = struct{}{}
			}
		}
	}
	return out
}
