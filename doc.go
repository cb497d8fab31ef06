// Package primerforge designs PCR primer pairs that amplify a bounded-length
// product in every genome of an ingroup while producing no disallowed
// amplicon in any genome of an outgroup.
//
// The pipeline runs in two stages. The first discovers candidate k-mers that
// are unique within every ingroup genome, shared across all of them, absent
// from every outgroup genome, and pass a biochemistry screen (GC%, Tm,
// homopolymer runs, intra-primer self-complementarity). The second clusters
// those candidates into position bins on a reference ingroup genome, pairs
// bins into PCR primer pairs under product-length and Tm constraints,
// validates each pair against the remaining ingroup genomes, and eliminates
// any pair that produces a disallowed product length in an outgroup genome.
package primerforge
