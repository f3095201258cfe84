// Package reference provides access to reference genome subsequences.
package reference

import "fmt"

// Fetcher fetches a reference subsequence by chromosome name over a
// zero-based half-open [start, end) span.
type Fetcher interface {
	Fetch(chrom string, start, end int64) (string, error)
}

// MapFetcher is an in-memory Fetcher backed by full chromosome
// sequences. Intended for tests.
type MapFetcher map[string]string

// Fetch returns seq[start:end] for the named chromosome.
func (m MapFetcher) Fetch(chrom string, start, end int64) (string, error) {
	seq, ok := m[chrom]
	if !ok {
		return "", fmt.Errorf("unknown chromosome %q", chrom)
	}
	if start < 0 || end > int64(len(seq)) || start > end {
		return "", fmt.Errorf("span [%d, %d) out of range for %q (length %d)", start, end, chrom, len(seq))
	}
	return seq[start:end], nil
}
