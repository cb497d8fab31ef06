// Package output writes primerforge's final TSV result file (spec.md §6),
// grounded on the teacher's use of github.com/shenwei356/xopen.Wopen for
// buffered, possibly-compressed output writing in unikmer/cmd/count.go.
package output

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shenwei356/xopen"

	"github.com/evolgen/primerforge"
)

// Write renders pairs to path as tab-separated values: the header row,
// then one row per pair, ingroup genome columns before outgroup genome
// columns, each group ordered by genome name (spec.md §6).
func Write(path string, pairs []primerforge.ResolvedPair, ingroupNames, outgroupNames []string) error {
	ingroup := append([]string(nil), ingroupNames...)
	outgroupSorted := append([]string(nil), outgroupNames...)
	sort.Strings(ingroup)
	sort.Strings(outgroupSorted)

	w, err := xopen.Wopen(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := w.WriteString(headerLine(ingroup, outgroupSorted)); err != nil {
		return err
	}

	for _, pair := range pairs {
		line, err := rowLine(pair, ingroup, outgroupSorted)
		if err != nil {
			return err
		}
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func headerLine(ingroup, outgroup []string) string {
	cols := []string{"fwd_seq", "fwd_Tm", "fwd_GC", "rev_seq", "rev_Tm", "rev_GC"}
	for _, name := range ingroup {
		cols = append(cols, name+"_contig", name+"_length")
	}
	for _, name := range outgroup {
		cols = append(cols, name+"_contig", name+"_length")
	}
	return joinTSV(cols) + "\n"
}

func rowLine(pair primerforge.ResolvedPair, ingroup, outgroup []string) (string, error) {
	cols := []string{
		pair.Fwd.Seq,
		formatFloat(pair.Fwd.Tm),
		formatFloat(pair.Fwd.GCPercent),
		pair.Rev.Seq,
		formatFloat(pair.Rev.Tm),
		formatFloat(pair.Rev.GCPercent),
	}

	for _, name := range ingroup {
		product, ok := pair.Ingroup[name]
		if !ok {
			return "", fmt.Errorf("missing ingroup product for genome %q", name)
		}
		cols = append(cols, product.Contig, strconv.Itoa(product.Length))
	}
	for _, name := range outgroup {
		cols = append(cols, pair.OutgroupContig[name], pair.OutgroupLength[name])
	}
	return joinTSV(cols) + "\n", nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func joinTSV(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += "\t" + c
	}
	return out
}
