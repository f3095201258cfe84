package reference

import (
	"fmt"

	"github.com/brentp/faidx"
)

// FaidxFetcher is a Fetcher backed by an indexed FASTA file. The
// .fai index must exist next to the FASTA (samtools faidx).
type FaidxFetcher struct {
	fai *faidx.Faidx
}

// NewFaidxFetcher opens the FASTA at path together with its index.
func NewFaidxFetcher(path string) (*FaidxFetcher, error) {
	fai, err := faidx.New(path)
	if err != nil {
		return nil, fmt.Errorf("open indexed fasta %s: %w", path, err)
	}
	return &FaidxFetcher{fai: fai}, nil
}

// Fetch returns the subsequence over the zero-based half-open span.
func (f *FaidxFetcher) Fetch(chrom string, start, end int64) (string, error) {
	seq, err := f.fai.Get(chrom, int(start), int(end))
	if err != nil {
		return "", fmt.Errorf("fetch %s:%d-%d: %w", chrom, start, end, err)
	}
	return seq, nil
}

// Close releases the underlying FASTA handle.
func (f *FaidxFetcher) Close() error {
	f.fai.Close()
	return nil
}
