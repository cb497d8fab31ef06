package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evolgen/primerforge"
	"github.com/evolgen/primerforge/internal/config"
	"github.com/evolgen/primerforge/internal/output"
	"github.com/evolgen/primerforge/internal/seqio"
)

func init() {
	flags := RootCmd.Flags()
	flags.StringP("ingroup", "i", "", "comma-separated list of ingroup sequence files (required)")
	flags.StringP("outgroup", "u", "", "comma-separated list of outgroup sequence files")
	flags.StringP("out", "o", "", "output TSV path (required)")
	flags.StringP("format", "f", config.DefaultFormat, "sequence file format: fasta|genbank")
	flags.StringP("primer_len", "p", "16,20", "primer length range as N or N,M")
	flags.StringP("gc_range", "g", "40.0,60.0", "GC%% range as X,Y")
	flags.StringP("tm_range", "t", "55.0,68.0", "melting temperature range as X,Y")
	flags.StringP("pcr_prod_len", "r", "120,2400", "PCR product length range as N or N,M")
	flags.Float64P("tm_diff", "d", config.DefaultMaxTmDiff, "maximum allowed Tm difference between fwd and rev primers")
	flags.IntP("num_threads", "n", config.DefaultNumThreads, "number of worker threads")

	RootCmd.RunE = runDesign
}

func runDesign(cmd *cobra.Command, args []string) error {
	setVerbose(getFlagBoolQuiet(cmd, "verbose"))

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	log.Infof("loading %d ingroup and %d outgroup genomes", len(cfg.Ingroup), len(cfg.Outgroup))
	ingroup, err := seqio.LoadGenomes(cfg.Ingroup, cfg.Format)
	if err != nil {
		return err
	}
	outgroup, err := seqio.LoadGenomes(cfg.Outgroup, cfg.Format)
	if err != nil {
		return err
	}

	pairs, err := primerforge.Run(ingroup, outgroup, cfg)
	if err != nil {
		return err
	}

	ingroupNames := make([]string, len(ingroup))
	for i, g := range ingroup {
		ingroupNames[i] = g.Name
	}
	outgroupNames := make([]string, len(outgroup))
	for i, g := range outgroup {
		outgroupNames[i] = g.Name
	}

	log.Infof("writing %d pairs to %s", len(pairs), cfg.Out)
	return output.Write(cfg.Out, pairs, ingroupNames, outgroupNames)
}

func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New()
	cfg.Ingroup = getFlagStringSlice(cmd, "ingroup")
	cfg.Outgroup = getFlagStringSlice(cmd, "outgroup")
	cfg.Out = getFlagString(cmd, "out")
	cfg.Format = getFlagString(cmd, "format")

	minLen, maxLen, err := parseIntRange("primer_len", getFlagString(cmd, "primer_len"))
	if err != nil {
		return nil, err
	}
	cfg.MinLen, cfg.MaxLen = minLen, maxLen

	minGC, maxGC, err := parseFloatRange("gc_range", getFlagString(cmd, "gc_range"))
	if err != nil {
		return nil, err
	}
	cfg.MinGC, cfg.MaxGC = minGC, maxGC

	minTm, maxTm, err := parseFloatRange("tm_range", getFlagString(cmd, "tm_range"))
	if err != nil {
		return nil, err
	}
	cfg.MinTm, cfg.MaxTm = minTm, maxTm

	minProd, maxProd, err := parseIntRange("pcr_prod_len", getFlagString(cmd, "pcr_prod_len"))
	if err != nil {
		return nil, err
	}
	cfg.MinProdLen, cfg.MaxProdLen = minProd, maxProd

	cfg.MaxTmDiff, err = cmd.Flags().GetFloat64("tm_diff")
	if err != nil {
		return nil, err
	}
	cfg.NumThreads, err = cmd.Flags().GetInt("num_threads")
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getFlagBoolQuiet(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
