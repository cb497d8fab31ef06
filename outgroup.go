package primerforge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/evolgen/primerforge/internal/config"
)

// ResolvedPair is a ValidatedPair augmented with its outgroup products
// (spec.md §4.9), ready for the output writer.
type ResolvedPair struct {
	Fwd     Primer
	Rev     Primer
	Ingroup map[string]IngroupProduct // genome name -> product record

	// OutgroupContig and OutgroupLength are keyed by outgroup genome name.
	// A genome with a single product stores a plain "contig"/"length"
	// string; multiple products are comma-joined (spec.md §6).
	OutgroupContig map[string]string
	OutgroupLength map[string]string
}

// outgroupProduct is one observed (contig, length) PCR product.
type outgroupProduct struct {
	Contig string
	Length int
}

// nullOutgroupProduct is the sentinel recorded when a contig yields no
// binding sites for a pair at all (spec.md §4.9,
// original_source/bin/removeOutgroupPrimers.py's __NULL_PRODUCT).
var nullOutgroupProduct = outgroupProduct{Contig: "NA", Length: 0}

// pairOutgroupState accumulates, for one pair and one outgroup genome, the
// distinct products observed across every contig of that genome.
type pairOutgroupState struct {
	hasNull bool
	real    map[outgroupProduct]bool
}

// EliminateOutgroup drops any pair that produces a disallowed product
// length in any outgroup genome, and attaches the surviving per-outgroup
// product records to every pair that remains (spec.md §4.9). outgroup
// genomes are processed in the given order; once every pair has been
// rejected, processing stops early exactly as
// original_source/bin/removeOutgroupPrimers.py does.
func EliminateOutgroup(pairs []ValidatedPair, outgroup []Genome, cfg *config.Config) ([]ResolvedPair, error) {
	accepted := make([]bool, len(pairs))
	for i := range accepted {
		accepted[i] = true
	}

	// state[genomeName][pairIndex]
	state := make(map[string]map[int]*pairOutgroupState, len(outgroup))

	for _, genome := range outgroup {
		if !anyAccepted(accepted) {
			break
		}

		state[genome.Name] = make(map[int]*pairOutgroupState)
		snapshot := acceptedIndices(accepted)

		for _, contig := range genome.Contigs {
			index := buildKmerPositionIndex(contig, cfg.MinLen, cfg.MaxLen)

			for _, idx := range snapshot {
				if !accepted[idx] {
					continue
				}
				pair := pairs[idx]

				st := state[genome.Name][idx]
				if st == nil {
					st = &pairOutgroupState{real: make(map[outgroupProduct]bool)}
					state[genome.Name][idx] = st
				}

				lengths := outgroupProductSizes(index, pair.Fwd, pair.Rev)
				if len(lengths) == 0 {
					st.hasNull = true
					continue
				}

				rejected := false
				for _, length := range lengths {
					if cfg.Disallowed(length) {
						accepted[idx] = false
						rejected = true
						break
					}
				}
				if rejected {
					continue
				}
				for _, length := range lengths {
					st.real[outgroupProduct{Contig: contig.ID, Length: length}] = true
				}
			}
		}
	}

	var out []ResolvedPair
	for idx, pair := range pairs {
		if !accepted[idx] {
			continue
		}

		resolved := ResolvedPair{
			Fwd:            pair.Fwd,
			Rev:            pair.Rev,
			Ingroup:        pair.Products,
			OutgroupContig: make(map[string]string, len(outgroup)),
			OutgroupLength: make(map[string]string, len(outgroup)),
		}

		for _, genome := range outgroup {
			st := state[genome.Name][idx]
			contigStr, lengthStr := resolveOutgroupProducts(st)
			resolved.OutgroupContig[genome.Name] = contigStr
			resolved.OutgroupLength[genome.Name] = lengthStr
		}

		out = append(out, resolved)
	}

	if len(out) == 0 {
		return nil, newError(KindNoPairsSurvive, "outgroup eliminator",
			"every candidate pair produces a disallowed product length in at least one outgroup genome")
	}
	return out, nil
}

// resolveOutgroupProducts collapses a pair's accumulated outgroup state into
// the (contig, length) strings the writer expects (spec.md §4.9,
// §9 open question: null products are only reported when no real product
// was ever observed in that genome).
func resolveOutgroupProducts(st *pairOutgroupState) (contigStr, lengthStr string) {
	if st == nil || len(st.real) == 0 {
		return nullOutgroupProduct.Contig, strconv.Itoa(nullOutgroupProduct.Length)
	}

	products := make([]outgroupProduct, 0, len(st.real))
	for p := range st.real {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Contig != products[j].Contig {
			return products[i].Contig < products[j].Contig
		}
		return products[i].Length < products[j].Length
	})

	if len(products) == 1 {
		return products[0].Contig, strconv.Itoa(products[0].Length)
	}

	contigs := make([]string, len(products))
	lengths := make([]string, len(products))
	for i, p := range products {
		contigs[i] = p.Contig
		lengths[i] = strconv.Itoa(p.Length)
	}
	return strings.Join(contigs, ","), strings.Join(lengths, ",")
}

// outgroupProductSizes resolves binding-site orientation (forward-then
// reverse) and returns the distinct positive PCR product lengths observed
// in one contig's k-mer index for one primer pair (spec.md §4.9).
func outgroupProductSizes(index map[string][]int, fwd, rev Primer) []int {
	fStarts, fOk := index[fwd.Seq]
	rStarts, rOk := index[ReverseComplementString(rev.Seq)]
	reversed := false

	if !fOk || !rOk {
		fStarts, fOk = index[ReverseComplementString(fwd.Seq)]
		rStarts, rOk = index[rev.Seq]
		reversed = true
	}
	if !fOk || !rOk {
		return nil
	}

	seen := make(map[int]bool)
	var out []int
	for _, f := range fStarts {
		for _, r := range rStarts {
			var pcrLen int
			if !reversed {
				pcrLen = r + len(rev.Seq) - f
			} else {
				pcrLen = f + len(fwd.Seq) - r
			}
			if pcrLen > 0 && !seen[pcrLen] {
				seen[pcrLen] = true
				out = append(out, pcrLen)
			}
		}
	}
	sort.Ints(out)
	return out
}

// buildKmerPositionIndex maps every literal substring of contig in
// [minLen, maxLen] to the list of start positions where it occurs
// (spec.md §4.9, grounded on
// original_source/bin/removeOutgroupPrimers.py's __getAllKmers).
func buildKmerPositionIndex(contig Contig, minLen, maxLen int) map[string][]int {
	index := make(map[string][]int)
	n := len(contig.Seq)
	for length := minLen; length <= maxLen; length++ {
		if length > n {
			continue
		}
		for start := 0; start+length <= n; start++ {
			s := string(contig.Seq[start : start+length])
			index[s] = append(index[s], start)
		}
	}
	return index
}

func anyAccepted(accepted []bool) bool {
	for _, a := range accepted {
		if a {
			return true
		}
	}
	return false
}

func acceptedIndices(accepted []bool) []int {
	idx := make([]int, 0, len(accepted))
	for i, a := range accepted {
		if a {
			idx = append(idx, i)
		}
	}
	return idx
}
