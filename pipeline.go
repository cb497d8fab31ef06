package primerforge

import (
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/evolgen/primerforge/internal/config"
)

// Run executes the full candidate-discovery and pair-assembly pipeline
// (spec.md §2 data flow: C3 -> C4 -> C5 -> C6 -> C7 -> C8 -> C9) over
// already-parsed genomes and returns the deterministically sorted result
// set. ingroup must be non-empty; its first member, after sorting by name,
// is used as the reference genome for binning and pair evaluation
// (spec.md §4.7, grounded on original_source/bin/getPrimerPairs.py's
// `firstName = next(iter(candidateKmers.keys()))`).
func Run(ingroup, outgroup []Genome, cfg *config.Config) ([]ResolvedPair, error) {
	if len(ingroup) == 0 {
		return nil, newError(KindInvalidInput, "pipeline", "at least one ingroup genome is required")
	}

	sortGenomesByName(ingroup)
	sortGenomesByName(outgroup)

	log.Info("enumerating ingroup candidate k-mers")
	ingroupUnique := make(map[string]map[string]KmerLoc, len(ingroup))
	for _, g := range ingroup {
		log.Infof("  %s: %s bp", g.Name, humanize.Comma(int64(g.Len())))
		ingroupUnique[g.Name] = EnumerateGenomeUnique(g, cfg.MinLen, cfg.MaxLen)
	}

	outgroupPresence := make(map[string]map[string]struct{}, len(outgroup))
	for _, g := range outgroup {
		outgroupPresence[g.Name] = EnumerateGenomePresence(g, cfg.MinLen, cfg.MaxLen)
	}

	log.Info("resolving shared k-mers across ingroup and outgroup")
	shared, err := ResolveSharedKmers(ingroupUnique, outgroupPresence)
	if err != nil {
		return nil, err
	}

	referenceName := ingroup[0].Name
	log.Infof("filtering candidates by biochemistry on reference genome %s", referenceName)
	candidates := FilterCandidates(shared[referenceName], cfg)
	if len(candidates) == 0 {
		return nil, newError(KindEmptyIntersection, "biochemistry filter",
			"no candidate on the reference genome passes the biochemistry envelope")
	}
	log.Infof("%s candidates passed the biochemistry envelope", humanize.Comma(int64(len(candidates))))

	log.Info("building position bins")
	bins := BuildBins(candidates, cfg)

	log.Info("evaluating bin pairs")
	pairs, err := EvaluatePairs(bins, cfg)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, newError(KindNoPairsSurvive, "pair evaluator", "no bin pair on the reference genome produced a valid primer pair")
	}

	log.Info("validating pairs across ingroup genomes")
	validated, err := ValidateAcrossIngroup(pairs, referenceName, shared, cfg)
	if err != nil {
		return nil, err
	}

	log.Info("eliminating pairs present in the outgroup")
	resolved, err := EliminateOutgroup(validated, outgroup, cfg)
	if err != nil {
		return nil, err
	}

	sortResolvedPairs(resolved)
	return resolved, nil
}

func sortGenomesByName(genomes []Genome) {
	sort.Slice(genomes, func(i, j int) bool { return genomes[i].Name < genomes[j].Name })
}

// sortResolvedPairs applies the deterministic final ordering required by
// spec.md §5: (fwd.contig, fwd.start, rev.start, fwd.sequence, rev.sequence).
func sortResolvedPairs(pairs []ResolvedPair) {
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.Fwd.Contig != b.Fwd.Contig {
			return a.Fwd.Contig < b.Fwd.Contig
		}
		if a.Fwd.Start != b.Fwd.Start {
			return a.Fwd.Start < b.Fwd.Start
		}
		if a.Rev.Start != b.Rev.Start {
			return a.Rev.Start < b.Rev.Start
		}
		if a.Fwd.Seq != b.Fwd.Seq {
			return a.Fwd.Seq < b.Fwd.Seq
		}
		return a.Rev.Seq < b.Rev.Seq
	})
}
