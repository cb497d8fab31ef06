// Package config holds the parsed, validated run configuration shared by
// the primerforge CLI layer and the core pipeline (spec.md §6), grounded on
// the teacher's cobra flag-to-struct pattern in unikmer/cmd/root.go, which
// likewise parses PersistentFlags once into a plain struct consumed by every
// subcommand.
package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Default flag values (spec.md §6), matching the constants named in
// original_source/bin/main.py (DEF_MIN_GC, DEF_MAX_GC, etc.).
const (
	DefaultMinLen = 16
	DefaultMaxLen = 20

	DefaultMinGC = 40.0
	DefaultMaxGC = 60.0

	DefaultMinTm = 55.0
	DefaultMaxTm = 68.0

	DefaultMinProdLen = 120
	DefaultMaxProdLen = 2400

	DefaultMaxTmDiff = 5.0

	DefaultNumThreads = 1

	DefaultFormat = "fasta"
)

// Config is the fully parsed and validated set of run parameters consumed
// by the core pipeline. Every field except DisallowedLens corresponds to a
// flag in spec.md §6; DisallowedLens has no flag and is filled by
// SetDefaultDisallowedLens or by explicit assignment.
type Config struct {
	Ingroup  []string
	Outgroup []string
	Out      string
	Format   string

	MinLen, MaxLen int

	MinGC, MaxGC float64
	MinTm, MaxTm float64

	MinProdLen, MaxProdLen int
	MaxTmDiff              float64

	// DisallowedLens defaults to [MinProdLen, MaxProdLen] (spec.md §6).
	DisallowedLens map[int]bool

	NumThreads int
}

// New returns a Config populated with spec.md §6 defaults; callers overwrite
// fields from parsed flags and then call Validate.
func New() *Config {
	return &Config{
		Format:      DefaultFormat,
		MinLen:      DefaultMinLen,
		MaxLen:      DefaultMaxLen,
		MinGC:       DefaultMinGC,
		MaxGC:       DefaultMaxGC,
		MinTm:       DefaultMinTm,
		MaxTm:       DefaultMaxTm,
		MinProdLen:  DefaultMinProdLen,
		MaxProdLen:  DefaultMaxProdLen,
		MaxTmDiff:   DefaultMaxTmDiff,
		NumThreads:  DefaultNumThreads,
	}
}

// Disallowed reports whether length is a disallowed outgroup product length
// (spec.md §4.9). Callers must populate DisallowedLens (via
// SetDefaultDisallowedLens or explicit assignment) before calling this.
func (c *Config) Disallowed(length int) bool {
	return c.DisallowedLens[length]
}

// SetDefaultDisallowedLens fills DisallowedLens with every integer in
// [MinProdLen, MaxProdLen] when the caller did not supply an explicit set
// (spec.md §6 "disallowedLens defaults to [minProdLen, maxProdLen]").
func (c *Config) SetDefaultDisallowedLens() {
	c.DisallowedLens = make(map[int]bool, c.MaxProdLen-c.MinProdLen+1)
	for n := c.MinProdLen; n <= c.MaxProdLen; n++ {
		c.DisallowedLens[n] = true
	}
}

// Validate checks every numeric range and required field, returning a
// wrapped error describing the first problem found (spec.md §7
// InvalidInput).
func (c *Config) Validate() error {
	if len(c.Ingroup) == 0 {
		return errors.New("at least one ingroup sequence file is required")
	}
	if c.Out == "" {
		return errors.New("an output path is required")
	}
	if c.Format != "fasta" && c.Format != "genbank" {
		return errors.Errorf("unsupported format %q, must be fasta or genbank", c.Format)
	}
	if c.MinLen <= 0 || c.MaxLen <= 0 || c.MinLen > c.MaxLen {
		return errors.Errorf("invalid primer length range [%d,%d]", c.MinLen, c.MaxLen)
	}
	if c.MinGC < 0 || c.MaxGC > 100 || c.MinGC > c.MaxGC {
		return errors.Errorf("invalid GC%% range [%.1f,%.1f]", c.MinGC, c.MaxGC)
	}
	if c.MinTm > c.MaxTm {
		return errors.Errorf("invalid Tm range [%.1f,%.1f]", c.MinTm, c.MaxTm)
	}
	if c.MinProdLen <= 0 || c.MaxProdLen <= 0 || c.MinProdLen > c.MaxProdLen {
		return errors.Errorf("invalid product length range [%d,%d]", c.MinProdLen, c.MaxProdLen)
	}
	if c.MaxTmDiff < 0 {
		return errors.Errorf("invalid tm_diff %.1f, must be non-negative", c.MaxTmDiff)
	}
	if c.NumThreads <= 0 {
		return errors.Errorf("invalid num_threads %d, must be positive", c.NumThreads)
	}
	if c.DisallowedLens == nil {
		c.SetDefaultDisallowedLens()
	}
	return nil
}

// MinimizerLen returns the minimizer window length used by the bin
// splitter (spec.md §4.6: "minimizer of length ⌊minLen/2⌋").
func (c *Config) MinimizerLen() int {
	return c.MinLen / 2
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{ingroup=%d outgroup=%d len=[%d,%d] gc=[%.1f,%.1f] tm=[%.1f,%.1f] prod=[%d,%d] tmDiff=%.1f threads=%d}",
		len(c.Ingroup), len(c.Outgroup), c.MinLen, c.MaxLen, c.MinGC, c.MaxGC, c.MinTm, c.MaxTm, c.MinProdLen, c.MaxProdLen, c.MaxTmDiff, c.NumThreads)
}
