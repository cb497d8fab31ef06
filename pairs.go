package primerforge

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/twotwotwo/sorts"

	"github.com/evolgen/primerforge/internal/config"
)

// byLeft orders bins by their leftmost genomic position, letting the
// pessimistic-bound scan in EvaluatePairs walk a contig's bins in order.
type byLeft []Bin

func (s byLeft) Len() int           { return len(s) }
func (s byLeft) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byLeft) Less(i, j int) bool { return s[i].Left < s[j].Left }

// PairResult is an accepted primer pair as produced by C7 (spec.md §3, §4.7).
// Rev is already reverse-complemented, matching what the cross-genome and
// outgroup stages and the final writer expect.
type PairResult struct {
	Fwd           Primer
	Rev           Primer
	ProductLength int
}

// binPairTask is one (A, B) bin pair cleared by the pessimistic bound check
// in EvaluatePairs and queued for full evaluation.
type binPairTask struct {
	A, B Bin
}

// EvaluatePairs scans bin pairs on the reference genome, per contig, with
// the pessimistic-bound early termination of spec.md §4.7, and evaluates
// cleared pairs in parallel. Accepted pairs are funneled through a
// single-writer channel to a temporary file (spec.md §5, §9), then read
// back into memory once every worker has finished.
func EvaluatePairs(bins []Bin, cfg *config.Config) ([]PairResult, error) {
	byContig := make(map[string][]Bin)
	for _, b := range bins {
		byContig[b.Contig] = append(byContig[b.Contig], b)
	}

	sorts.MaxProcs = cfg.NumThreads

	var tasks []binPairTask
	for _, list := range byContig {
		sorts.Quicksort(byLeft(list))

		for i, a := range list {
			for j := i + 1; j < len(list); j++ {
				b := list[j]
				smallest := (b.Left + cfg.MinLen) - (a.Right - cfg.MinLen)
				largest := b.Right - a.Left

				if smallest > cfg.MaxProdLen {
					break
				}
				if largest < cfg.MinProdLen {
					continue
				}
				tasks = append(tasks, binPairTask{A: a, B: b})
			}
		}
	}

	if len(tasks) == 0 {
		return nil, nil
	}

	tmp, err := os.CreateTemp("", "primerforge-pairs-*.tsv")
	if err != nil {
		return nil, wrapError(KindIOError, "pair evaluator", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	rows := make(chan PairResult, 64)
	writeErrCh := make(chan error, 1)

	var writerWg sync.WaitGroup
	writerWg.Add(1)
	go func() {
		defer writerWg.Done()
		w := bufio.NewWriter(tmp)
		for row := range rows {
			line := fmt.Sprintf("%s\t%s\t%d\t%s\t%d\t%d\n",
				row.Fwd.Contig, row.Fwd.Seq, row.Fwd.Start,
				row.Rev.Seq, row.Rev.InclusiveEnd(), row.ProductLength)
			if _, err := w.WriteString(line); err != nil {
				writeErrCh <- err
				continue
			}
			if err := w.Flush(); err != nil {
				writeErrCh <- err
			}
		}
		close(writeErrCh)
	}()

	numWorkers := cfg.NumThreads
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}
	chunks := splitIndices(len(tasks), numWorkers)

	var workersWg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		workersWg.Add(1)
		go func(w int) {
			defer workersWg.Done()
			for _, idx := range chunks[w] {
				task := tasks[idx]
				if pair, ok := evaluateBinPair(task.A, task.B, cfg); ok {
					rows <- pair
				}
			}
		}(w)
	}
	workersWg.Wait()
	close(rows)
	writerWg.Wait()

	if err := tmp.Close(); err != nil {
		return nil, wrapError(KindIOError, "pair evaluator", err)
	}
	for err := range writeErrCh {
		if err != nil {
			return nil, wrapError(KindIOError, "pair evaluator", err)
		}
	}

	return readPairsFile(tmpPath)
}

// evaluateBinPair scans A x B and returns the first pair passing every
// check in spec.md §4.7, in order.
func evaluateBinPair(a, b Bin, cfg *config.Config) (PairResult, bool) {
	for _, fwd := range a.Primers {
		for _, rev := range b.Primers {
			if fwd.Start >= rev.Start {
				continue
			}
			if !fwd.ThreePrimeGC() || !rev.FivePrimeGC() {
				continue
			}

			productLength := rev.InclusiveEnd() - fwd.Start + 1
			if productLength < cfg.MinProdLen || productLength > cfg.MaxProdLen {
				continue
			}
			if diff := fwd.Tm - rev.Tm; diff > cfg.MaxTmDiff || diff < -cfg.MaxTmDiff {
				continue
			}
			if hasDimer([]byte(fwd.Seq), []byte(rev.Seq)) {
				continue
			}

			revRC := rev.ReverseComplementPrimer()
			return PairResult{Fwd: fwd, Rev: revRC, ProductLength: productLength}, true
		}
	}
	return PairResult{}, false
}

// readPairsFile parses the intermediate TSV format of spec.md §6 back into
// PairResults, reconstructing each Primer via NewPrimer so Tm/GC are
// recomputed rather than serialized.
func readPairsFile(path string) ([]PairResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(KindIOError, "pair evaluator", err)
	}

	var out []PairResult
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 6 {
			return nil, newError(KindInternal, "pair evaluator", "malformed intermediate row: "+line)
		}

		contig := fields[0]
		fwdSeq := fields[1]
		fwdStart, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, wrapError(KindInternal, "pair evaluator", err)
		}
		revSeq := fields[3]
		revEnd, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, wrapError(KindInternal, "pair evaluator", err)
		}
		productLength, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, wrapError(KindInternal, "pair evaluator", err)
		}

		revStart := revEnd - len(revSeq) + 1
		out = append(out, PairResult{
			Fwd:           NewPrimer(fwdSeq, contig, fwdStart, len(fwdSeq)),
			Rev:           NewPrimer(revSeq, contig, revStart, len(revSeq)),
			ProductLength: productLength,
		})
	}
	return out, nil
}
