package primerforge

import (
	"github.com/twotwotwo/sorts"

	"github.com/evolgen/primerforge/internal/config"
)

// byStartThenLongest orders primers by genomic start ascending, breaking
// ties by length descending so the longest candidate at a given position
// anchors its overlap cluster (spec.md §4.6). It implements sort.Interface
// so the per-contig sort can run through the teacher's parallel quicksort
// (github.com/twotwotwo/sorts), the same way unikmer/cmd/common.go tunes
// sorts.MaxProcs before sorting large k-mer lists.
type byStartThenLongest []Primer

func (s byStartThenLongest) Len() int      { return len(s) }
func (s byStartThenLongest) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byStartThenLongest) Less(i, j int) bool {
	if s[i].Start != s[j].Start {
		return s[i].Start < s[j].Start
	}
	return s[i].Length > s[j].Length
}

// maxBinSpan is the design constant from spec.md §4.6: a bin whose span
// exceeds this many bases is split by minimizer equivalence.
const maxBinSpan = 64

// Bin is a non-empty list of Primers on one contig whose genomic intervals
// form a single connected overlap chain (spec.md §3).
type Bin struct {
	Contig  string
	Primers []Primer
	Left    int
	Right   int
}

func newBin(primers []Primer) Bin {
	b := Bin{Contig: primers[0].Contig, Primers: primers}
	b.Left = primers[0].Start
	b.Right = primers[0].InclusiveEnd()
	for _, p := range primers[1:] {
		if p.Start < b.Left {
			b.Left = p.Start
		}
		if p.InclusiveEnd() > b.Right {
			b.Right = p.InclusiveEnd()
		}
	}
	return b
}

// BuildBins clusters primers per contig by positional overlap and splits
// oversized clusters by minimizer (spec.md §4.6). The returned bins are not
// sorted across contigs; C7 sorts per-contig bins by Left before scanning.
func BuildBins(primers []Primer, cfg *config.Config) []Bin {
	byContig := make(map[string][]Primer)
	for _, p := range primers {
		byContig[p.Contig] = append(byContig[p.Contig], p)
	}

	sorts.MaxProcs = cfg.NumThreads

	var bins []Bin
	for _, list := range byContig {
		sorts.Quicksort(byStartThenLongest(list))

		for _, cluster := range clusterByOverlap(list) {
			bins = append(bins, splitOversizedBin(cluster, cfg.MinimizerLen())...)
		}
	}
	return bins
}

// clusterByOverlap walks a start-sorted primer list and groups primers into
// overlap chains: a new chain starts whenever cand.start >= prevEnd, with
// prevEnd the inclusive end of the chain seen so far (spec.md §4.6, §3;
// getPrimerPairs.py's __binOverlappingPrimers uses the same inclusive end
// for both pair geometry and bin clustering).
func clusterByOverlap(sorted []Primer) [][]Primer {
	if len(sorted) == 0 {
		return nil
	}

	var clusters [][]Primer
	current := []Primer{sorted[0]}
	prevEnd := sorted[0].InclusiveEnd()

	for _, p := range sorted[1:] {
		if p.Start >= prevEnd {
			clusters = append(clusters, current)
			current = []Primer{p}
			prevEnd = p.InclusiveEnd()
			continue
		}
		current = append(current, p)
		if p.InclusiveEnd() > prevEnd {
			prevEnd = p.InclusiveEnd()
		}
	}
	clusters = append(clusters, current)
	return clusters
}

// splitOversizedBin returns a single bin for cluster, unless its span
// exceeds maxBinSpan, in which case it is partitioned by minimizer
// equivalence of length k (spec.md §4.6).
func splitOversizedBin(cluster []Primer, k int) []Bin {
	bin := newBin(cluster)
	if bin.Right-bin.Left <= maxBinSpan {
		return []Bin{bin}
	}

	byMinimizer := make(map[string][]Primer)
	var order []string
	for _, p := range cluster {
		m := p.Minimizer(k)
		if _, seen := byMinimizer[m]; !seen {
			order = append(order, m)
		}
		byMinimizer[m] = append(byMinimizer[m], p)
	}

	bins := make([]Bin, 0, len(order))
	for _, m := range order {
		bins = append(bins, newBin(byMinimizer[m]))
	}
	return bins
}
