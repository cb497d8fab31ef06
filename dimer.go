package primerforge

import "math"

// dimerIdentityThreshold is the PID cutoff above which a candidate pair is
// rejected as a primer dimer (spec.md §4.7 check 4).
const dimerIdentityThreshold = 0.90

// hasDimer screens a and b for excessive self-complementary pairing using a
// global alignment with match = +2, mismatch = -1, disallowed internal
// gaps, and free end gaps (spec.md §4.7 check 4). Disallowing internal gaps
// collapses the alignment search to a scan over relative diagonal offsets
// (shifts) of b against a: free end gaps mean the non-overlapping ends of
// the shorter sequence cost nothing, and forbidding internal gaps means no
// shift can ever do better by opening one. For each shift, the score is
// 2*matches - mismatches over the overlapping region; the optimal shift's
// identity fraction is max(matches/len(a), matches/len(b)). Grounded on
// original_source/bin/getPrimerPairs.py's use of
// Bio.Align.PairwiseAligner with internal_open_gap_score = -inf.
func hasDimer(a, b []byte) bool {
	lenA, lenB := len(a), len(b)
	if lenA == 0 || lenB == 0 {
		return false
	}

	bestScore := math.Inf(-1)
	bestIdentity := 0.0

	for shift := -(lenB - 1); shift <= lenA-1; shift++ {
		matches, mismatches := 0, 0
		for i := 0; i < lenA; i++ {
			j := i - shift
			if j < 0 || j >= lenB {
				continue
			}
			if a[i] == b[j] {
				matches++
			} else {
				mismatches++
			}
		}

		score := float64(matches)*2 - float64(mismatches)
		identity := 0.0
		if matches > 0 {
			identity = math.Max(float64(matches)/float64(lenA), float64(matches)/float64(lenB))
		}

		switch {
		case score > bestScore:
			bestScore = score
			bestIdentity = identity
		case score == bestScore && identity > bestIdentity:
			bestIdentity = identity
		}
	}

	return bestIdentity > dimerIdentityThreshold
}
