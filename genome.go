package primerforge

import "github.com/evolgen/primerforge/internal/genome"

// Contig and Genome are aliases of internal/genome's types, kept so both
// the CLI's sequence loader and the core pipeline share one definition
// without an import cycle between them (spec.md §3).
type Contig = genome.Contig
type Genome = genome.Genome
