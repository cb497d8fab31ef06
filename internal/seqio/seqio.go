// Package seqio loads genomes from sequence files for the primerforge
// pipeline, grounded on the teacher's use of
// github.com/shenwei356/bio/seqio/fastx and github.com/shenwei356/xopen in
// unikmer/cmd/count.go (transparent gzip/bzip2/xz handling comes from
// xopen; FASTA/FASTQ record iteration comes from fastx).
package seqio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/evolgen/primerforge/internal/genome"
)

// LoadGenomes reads one genome per path using the given format ("fasta" or
// "genbank", spec.md §6 `-f/--format`). The genome name is the file's
// basename without extension (spec.md §6).
func LoadGenomes(paths []string, format string) ([]genome.Genome, error) {
	genomes := make([]genome.Genome, 0, len(paths))
	for _, path := range paths {
		g, err := loadOne(path, format)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", path)
		}
		genomes = append(genomes, g)
	}
	return genomes, nil
}

func loadOne(path, format string) (genome.Genome, error) {
	switch format {
	case "fasta", "":
		return loadFasta(path)
	case "genbank":
		return genome.Genome{}, errors.New("genbank format is not supported by this build; convert to FASTA first")
	default:
		return genome.Genome{}, errors.Errorf("unsupported format %q", format)
	}
}

func loadFasta(path string) (genome.Genome, error) {
	name := genomeName(path)
	g := genome.Genome{Name: name}

	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return g, err
	}

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return g, err
		}

		seq := make([]byte, len(record.Seq.Seq))
		copy(seq, record.Seq.Seq)
		g.Contigs = append(g.Contigs, genome.Contig{
			ID:  string(record.ID),
			Seq: seq,
		})
	}
	return g, nil
}

func genomeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
