// Command primerforge designs PCR primer pairs shared across a set of
// ingroup genomes and absent from an outgroup set.
package main

import "github.com/evolgen/primerforge/internal/cmd"

func main() {
	cmd.Execute()
}
