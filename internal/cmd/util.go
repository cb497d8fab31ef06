package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// checkError prints a fatal error and exits non-zero, the same terse
// top-level failure path the teacher uses throughout unikmer/cmd (each
// subcommand calls checkError(err) immediately after any fallible call).
func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, name string) string {
	s, err := cmd.Flags().GetString(name)
	checkError(err)
	return s
}

func getFlagStringSlice(cmd *cobra.Command, name string) []string {
	raw := getFlagString(cmd, name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseIntRange parses "N" or "N,M" into (N, M); a single value means
// min == max (spec.md §6, e.g. -p/--primer_len).
func parseIntRange(name, raw string) (int, int, error) {
	parts := strings.Split(raw, ",")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid value %q for --%s", raw, name)
		}
		return n, n, nil
	case 2:
		lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("invalid range %q for --%s", raw, name)
		}
		return lo, hi, nil
	default:
		return 0, 0, fmt.Errorf("invalid range %q for --%s, expected N or N,M", raw, name)
	}
}

// parseFloatRange parses "X,Y" into (X, Y) (spec.md §6, e.g. -g/--gc_range).
func parseFloatRange(name, raw string) (float64, float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q for --%s, expected X,Y", raw, name)
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid range %q for --%s", raw, name)
	}
	return lo, hi, nil
}
