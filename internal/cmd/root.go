// Package cmd implements primerforge's cobra command-line surface,
// grounded on the PersistentFlags-plus-Options layout of the teacher's
// unikmer/cmd/root.go and unikmer/cmd/util.go.
package cmd

import (
	"fmt"
	"os"

	logging "github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"

	"github.com/evolgen/primerforge"
)

// log reuses the backend/format that primerforge's own log.go installs at
// package-init time, so the CLI layer and the core pipeline share one
// formatted stream instead of racing to configure go-logging twice.
var log = logging.MustGetLogger("primerforge/cmd")

// RootCmd is the base command when primerforge is called without
// subcommands.
var RootCmd = &cobra.Command{
	Use:   "primerforge",
	Short: "design PCR primer pairs shared across genomes and absent from an outgroup",
	Long: `primerforge - PCR primer design across ingroup/outgroup genome sets

Designs primer pairs that amplify a bounded-length product in every ingroup
genome while producing no disallowed amplicon in any outgroup genome.
`,
}

// Execute runs RootCmd, exiting non-zero on failure. Called once from
// cmd/primerforge/main.go.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose (debug) logging")
}

// setVerbose toggles between INFO and DEBUG logging levels.
func setVerbose(verbose bool) {
	primerforge.SetVerbose(verbose)
}
