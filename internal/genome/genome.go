// Package genome holds the Genome/Contig data model shared by the sequence
// loader (internal/seqio) and the core pipeline, kept in its own package so
// neither side imports the other (spec.md §3).
package genome

// Contig is a named sequence within a genome.
type Contig struct {
	ID  string
	Seq []byte
}

// Genome is an ordered collection of contigs sharing a genome name. Name is
// the basename of the source file without extension (spec.md §6).
type Genome struct {
	Name    string
	Contigs []Contig
}

// Len returns the total number of bases across all contigs, used only for
// progress logging (github.com/dustin/go-humanize formatting).
func (g Genome) Len() int {
	n := 0
	for _, c := range g.Contigs {
		n += len(c.Seq)
	}
	return n
}
