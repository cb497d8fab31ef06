package primerforge

import "bytes"

// complementTable maps each upper-case A/C/G/T byte to its Watson-Crick
// complement. Any other byte (ambiguous IUPAC codes, lower case) passes
// through unchanged, matching the teacher's KmerCode codec of keeping
// behavior defined but not guaranteeing biological correctness on bases
// outside A/C/G/T (spec.md §1 Non-goals).
var complementTable = func() [256]byte {
	var t [256]byte
	for i := 0; i < 256; i++ {
		t[i] = byte(i)
	}
	t['A'], t['T'] = 'T', 'A'
	t['C'], t['G'] = 'G', 'C'
	t['a'], t['t'] = 't', 'a'
	t['c'], t['g'] = 'g', 'c'
	return t
}()

// Complement returns the base-by-base Watson-Crick complement of seq,
// without reversing it.
func Complement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = complementTable[b]
	}
	return out
}

// ReverseComplement returns the reverse complement of seq: complement then
// reverse, per spec.md §3.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, b := range seq {
		out[n-1-i] = complementTable[b]
	}
	return out
}

// ReverseComplementString is the string convenience wrapper used throughout
// the candidate/pair stages, which key maps by string sequences.
func ReverseComplementString(seq string) string {
	return string(ReverseComplement([]byte(seq)))
}

// GCPercent returns 100 * (|G|+|C|) / length, per spec.md §4.1. An empty
// sequence reports 0 rather than dividing by zero.
func GCPercent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	var gc int
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(seq))
}

// CanonicalKey returns the lexicographically smaller of seq and its reverse
// complement, as a string, so that occurrences on either strand of a genome
// collapse to a single dictionary key (spec.md §4.3, grounded on the
// teacher's KmerCode.Canonical() strand folding in kmer.go, adapted from
// 2-bit packed codes to raw bytes because the pipeline needs KMP and
// minimizer substring operations on the literal sequence).
func CanonicalKey(seq []byte) string {
	rc := ReverseComplement(seq)
	if bytes.Compare(rc, seq) < 0 {
		return string(rc)
	}
	return string(seq)
}

// KMPSearch reports whether pattern occurs anywhere in text, using the
// Knuth-Morris-Pratt algorithm (spec.md §4.1), used by the homopolymer and
// intra-primer self-complementarity screens in C5.
func KMPSearch(text, pattern []byte) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(pattern) > len(text) {
		return false
	}

	failure := kmpFailureTable(pattern)

	i, j := 0, 0
	for i < len(text) {
		if text[i] == pattern[j] {
			i++
			j++
			if j == len(pattern) {
				return true
			}
		} else if j > 0 {
			j = failure[j-1]
		} else {
			i++
		}
	}
	return false
}

// kmpFailureTable builds the KMP "longest proper prefix which is also a
// suffix" table for pattern.
func kmpFailureTable(pattern []byte) []int {
	failure := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	return failure
}

// Minimizer returns the lexicographically smallest length-k substring of
// seq, comparing both strands (seq itself and its reverse complement), with
// ties broken by the earliest position on the forward strand (spec.md §4.1,
// §9 "Minimizer tie-breaking"). It is grounded on the windowed minimum
// computed by the teacher's sketch.go over whole genomes, narrowed here to
// the single fixed-length primer window the bin-splitting step (C6) needs.
func Minimizer(seq []byte, k int) string {
	if k <= 0 || k > len(seq) {
		return string(seq)
	}

	best := ""
	bestSet := false

	consider := func(window []byte) {
		s := string(window)
		if !bestSet || s < best {
			best = s
			bestSet = true
		}
	}

	for start := 0; start+k <= len(seq); start++ {
		consider(seq[start : start+k])
	}

	rc := ReverseComplement(seq)
	for start := 0; start+k <= len(rc); start++ {
		window := rc[start : start+k]
		s := string(window)
		if s < best {
			best = s
		}
	}

	return best
}

// HasHomopolymerRun reports whether seq contains a run of at least n
// identical A/C/G/T bases, checked via KMP against each of the four
// homopolymer strings (spec.md §4.5 step 3).
func HasHomopolymerRun(seq []byte, n int) bool {
	for _, base := range []byte{'A', 'C', 'G', 'T'} {
		run := bytes.Repeat([]byte{base}, n)
		if KMPSearch(seq, run) {
			return true
		}
	}
	return false
}

// HasInternalRevCompRepeat reports whether any length-w window of seq has
// its reverse complement occurring elsewhere as a substring of seq
// (spec.md §4.5 step 4, the coarse hairpin/self-complement screen). A
// window's reverse complement trivially matches the window itself whenever
// the window is one of the 4^(w/2) self-complementary palindromes (e.g.
// "ACGT"); that trivial same-position match is not a repeat, so only a
// match at a different start position counts.
func HasInternalRevCompRepeat(seq []byte, w int) bool {
	if len(seq) < w {
		return false
	}
	for i := 0; i+w <= len(seq); i++ {
		window := seq[i : i+w]
		rc := ReverseComplement(window)
		for _, j := range kmpAllIndices(seq, rc) {
			if j != i {
				return true
			}
		}
	}
	return false
}

// kmpAllIndices returns every start position where pattern occurs in text,
// using the Knuth-Morris-Pratt algorithm.
func kmpAllIndices(text, pattern []byte) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}

	failure := kmpFailureTable(pattern)
	var indices []int

	i, j := 0, 0
	for i < len(text) {
		if text[i] == pattern[j] {
			i++
			j++
			if j == len(pattern) {
				indices = append(indices, i-j)
				j = failure[j-1]
			}
		} else if j > 0 {
			j = failure[j-1]
		} else {
			i++
		}
	}
	return indices
}
