package primerforge

// Primer is an immutable descriptor of a candidate PCR oligo (spec.md §3,
// §4.2). Tm and GC% are cached once at construction. For a reverse primer,
// Seq holds the reverse complement of the genomic subsequence, but Start
// still refers to the genomic 5' position of the binding site on the
// template (spec.md §3).
type Primer struct {
	Seq    string
	Contig string
	Start  int
	Length int

	Tm       float64
	GCPercent float64
}

// NewPrimer constructs a Primer, caching Tm and GC% exactly once
// (spec.md §4.2).
func NewPrimer(seq, contig string, start, length int) Primer {
	b := []byte(seq)
	return Primer{
		Seq:       seq,
		Contig:    contig,
		Start:     start,
		Length:    length,
		Tm:        MeltingTemp(b),
		GCPercent: GCPercent(b),
	}
}

// InclusiveEnd is the inclusive right endpoint used in pair geometry and bin
// clustering (spec.md §3): start + length - 1.
func (p Primer) InclusiveEnd() int {
	return p.Start + p.Length - 1
}

// Equal compares the four-tuple (sequence, contig, start, length)
// (spec.md §4.2).
func (p Primer) Equal(other Primer) bool {
	return p.Seq == other.Seq && p.Contig == other.Contig &&
		p.Start == other.Start && p.Length == other.Length
}

// ReverseComplementPrimer returns a new Primer whose Seq is the reverse
// complement of p.Seq, keeping the same genomic Contig/Start/Length
// (spec.md §3, used when emitting the reverse member of a pair in C7).
func (p Primer) ReverseComplementPrimer() Primer {
	rc := ReverseComplementString(p.Seq)
	return NewPrimer(rc, p.Contig, p.Start, p.Length)
}

// Minimizer returns the primer's minimizer of the given length
// (spec.md §4.1, §4.6).
func (p Primer) Minimizer(k int) string {
	return Minimizer([]byte(p.Seq), k)
}

// ThreePrimeGC reports whether the last base of Seq is G or C
// (spec.md §4.7 check 1, forward orientation).
func (p Primer) ThreePrimeGC() bool {
	if p.Seq == "" {
		return false
	}
	switch p.Seq[len(p.Seq)-1] {
	case 'G', 'C':
		return true
	default:
		return false
	}
}

// FivePrimeGC reports whether the first base of Seq is G or C
// (spec.md §4.7 check 1, reverse-binding orientation: the primer is still
// stored as the genomic forward-strand sequence, so its first base becomes
// the 3' end after reverse-complementing).
func (p Primer) FivePrimeGC() bool {
	if p.Seq == "" {
		return false
	}
	switch p.Seq[0] {
	case 'G', 'C':
		return true
	default:
		return false
	}
}
