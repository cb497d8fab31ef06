package primerforge

// ResolveSharedKmers computes, for each ingroup genome, the surviving
// subset of its unique-kmer map: keys present in every ingroup genome and
// absent from every outgroup genome (spec.md §4.4). ingroup and outgroup
// are keyed by genome name; each ingroup value is the per-genome map
// produced by EnumerateGenomeUnique, and each outgroup value is the
// presence set produced by EnumerateGenomePresence.
//
// The returned map has the same shape as ingroup, pruned to the surviving
// key set. If the intersection is empty, a KindEmptyIntersection error is
// returned (spec.md §7).
func ResolveSharedKmers(
	ingroup map[string]map[string]KmerLoc,
	outgroup map[string]map[string]struct{},
) (map[string]map[string]KmerLoc, error) {
	shared := intersectKeys(ingroup)
	if len(shared) == 0 {
		return nil, newError(KindEmptyIntersection, "shared-kmer resolver",
			"no k-mer is shared, unique, and present across all ingroup genomes")
	}

	for _, outSet := range outgroup {
		for key := range outSet {
			delete(shared, key)
		}
	}

	if len(shared) == 0 {
		return nil, newError(KindEmptyIntersection, "shared-kmer resolver",
			"all shared ingroup k-mers are also present in the outgroup")
	}

	out := make(map[string]map[string]KmerLoc, len(ingroup))
	for name, kmers := range ingroup {
		pruned := make(map[string]KmerLoc, len(shared))
		for key := range shared {
			if loc, ok := kmers[key]; ok {
				pruned[key] = loc
			}
		}
		out[name] = pruned
	}
	return out, nil
}

// intersectKeys returns the set of keys present in every value map of
// perGenome.
func intersectKeys(perGenome map[string]map[string]KmerLoc) map[string]struct{} {
	shared := make(map[string]struct{})
	first := true
	for _, kmers := range perGenome {
		if first {
			for key := range kmers {
				shared[key] = struct{}{}
			}
			first = false
			continue
		}
		for key := range shared {
			if _, ok := kmers[key]; !ok {
				delete(shared, key)
			}
		}
	}
	return shared
}
