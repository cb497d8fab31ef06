package primerforge

import (
	"sort"
	"sync"

	"github.com/evolgen/primerforge/internal/config"
)

// groupKey identifies a (contig, start) biochemistry-filter group
// (spec.md §4.5).
type groupKey struct {
	Contig string
	Start  int
}

// FilterCandidates evaluates every group of same-start candidates in kmers
// and returns the accepted Primers, one per group at most (spec.md §4.5).
// Groups are independent tasks distributed across cfg.NumThreads workers,
// each accumulating into a private local slice merged on join (spec.md §5,
// §9 "prefer per-worker private lists"), grounded on the two-goroutine
// sync.WaitGroup fan-out in the teacher's unikmer/cmd/grep.go.
func FilterCandidates(kmers map[string]KmerLoc, cfg *config.Config) []Primer {
	groups := make(map[groupKey][]KmerLoc)
	for _, loc := range kmers {
		key := groupKey{Contig: loc.Contig, Start: loc.Start}
		groups[key] = append(groups[key], loc)
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}

	numWorkers := cfg.NumThreads
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(keys) && len(keys) > 0 {
		numWorkers = len(keys)
	}
	if numWorkers == 0 {
		return nil
	}

	chunks := splitIndices(len(keys), numWorkers)
	partials := make([][]Primer, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local []Primer
			for _, idx := range chunks[w] {
				key := keys[idx]
				group := groups[key]

				// "evaluates candidates in input order": candidates
				// within a group are the k-mer lengths sharing a left
				// endpoint, so input order is ascending length.
				sort.Slice(group, func(i, j int) bool {
					return group[i].Length < group[j].Length
				})

				for _, loc := range group {
					p := NewPrimer(loc.Seq, loc.Contig, loc.Start, loc.Length)
					if passesBiochemistry(p, cfg) {
						local = append(local, p)
						break
					}
				}
			}
			partials[w] = local
		}(w)
	}
	wg.Wait()

	var out []Primer
	for _, part := range partials {
		out = append(out, part...)
	}
	return out
}

// passesBiochemistry runs the four checks of spec.md §4.5, in order, short
// circuiting on the first failure.
func passesBiochemistry(p Primer, cfg *config.Config) bool {
	if p.GCPercent < cfg.MinGC || p.GCPercent > cfg.MaxGC {
		return false
	}
	if p.Tm < cfg.MinTm || p.Tm > cfg.MaxTm {
		return false
	}
	seq := []byte(p.Seq)
	if HasHomopolymerRun(seq, 4) {
		return false
	}
	if HasInternalRevCompRepeat(seq, 4) {
		return false
	}
	return true
}

// splitIndices partitions [0,n) into numWorkers roughly-equal contiguous
// chunks of indices.
func splitIndices(n, numWorkers int) [][]int {
	chunks := make([][]int, numWorkers)
	if numWorkers == 0 {
		return chunks
	}
	base := n / numWorkers
	rem := n % numWorkers
	start := 0
	for w := 0; w < numWorkers; w++ {
		size := base
		if w < rem {
			size++
		}
		end := start + size
		idx := make([]int, 0, size)
		for i := start; i < end; i++ {
			idx = append(idx, i)
		}
		chunks[w] = idx
		start = end
	}
	return chunks
}
