package primerforge

import "github.com/evolgen/primerforge/internal/config"

// IngroupProduct is the per-genome PCR product record attached to a
// validated pair (spec.md §4.8): the contig both primers share in that
// genome, and the resulting product length.
type IngroupProduct struct {
	Contig string
	Length int
}

// ValidatedPair is a PairResult that has been confirmed to produce a
// bounded-length product in every ingroup genome (spec.md §4.8). Products
// holds one entry per ingroup genome, including the reference.
type ValidatedPair struct {
	Fwd      Primer
	Rev      Primer
	Products map[string]IngroupProduct
}

// ValidateAcrossIngroup lifts each reference-genome pair to every other
// ingroup genome (spec.md §4.8). Genome-specific primer locations are
// looked up directly from the C4 shared-kmer maps by canonical key rather
// than re-run through the C5 biochemistry filter: GC%, Tm, homopolymer runs,
// and internal reverse-complement repeats are all strand-symmetric
// predicates of the sequence alone, so a literal sequence that passed C5 on
// the reference genome passes identically everywhere it recurs, making a
// second filtering pass redundant (grounded on
// original_source/bin/getPrimerPairs.py's __restructureCandidateKmerData,
// whose independent per-genome filtering has no observable effect on these
// particular checks).
//
// A pair survives only if, in every other ingroup genome, both primers
// share a contig and resolve (forward-then-reverse orientation) to a
// product length within [minProdLen, maxProdLen].
func ValidateAcrossIngroup(
	pairs []PairResult,
	referenceName string,
	sharedKmers map[string]map[string]KmerLoc,
	cfg *config.Config,
) ([]ValidatedPair, error) {
	var out []ValidatedPair

	for _, pair := range pairs {
		products := map[string]IngroupProduct{
			referenceName: {Contig: pair.Fwd.Contig, Length: pair.ProductLength},
		}
		fwdKey := CanonicalKey([]byte(pair.Fwd.Seq))
		revKey := CanonicalKey([]byte(pair.Rev.Seq))

		survives := true
		for name, kmers := range sharedKmers {
			if name == referenceName {
				continue
			}

			fwdLoc, ok1 := kmers[fwdKey]
			revLoc, ok2 := kmers[revKey]
			if !ok1 || !ok2 || fwdLoc.Contig != revLoc.Contig {
				survives = false
				break
			}

			var fwdStart, revEndIncl int
			if fwdLoc.Start < revLoc.Start {
				fwdStart = fwdLoc.Start
				revEndIncl = revLoc.Start + revLoc.Length - 1
			} else {
				fwdStart = revLoc.Start
				revEndIncl = fwdLoc.Start + fwdLoc.Length - 1
			}

			length := revEndIncl - fwdStart + 1
			if length < cfg.MinProdLen || length > cfg.MaxProdLen {
				survives = false
				break
			}
			products[name] = IngroupProduct{Contig: fwdLoc.Contig, Length: length}
		}

		if survives {
			out = append(out, ValidatedPair{Fwd: pair.Fwd, Rev: pair.Rev, Products: products})
		}
	}

	if len(out) == 0 {
		return nil, newError(KindNoPairsSurvive, "cross-genome pair validator",
			"no candidate pair produces a consistent product length in every ingroup genome")
	}
	return out, nil
}
