package pindel

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brentp/xopen"
	"go.uber.org/zap"

	"github.com/robrollback/metasv/internal/reference"
)

// dataMarker identifies variant summary lines. Pindel interleaves
// header and read-alignment lines with the summaries; only lines
// containing this token are records.
const dataMarker = "ChrID"

// Reader streams parsed records from a Pindel report. Malformed data
// lines abort the stream with an error rather than being skipped.
type Reader struct {
	reader     *bufio.Reader
	closer     io.Closer
	ref        reference.Fetcher
	lineNumber int
	logger     *zap.Logger
}

// NewReader opens a Pindel report. Supports plain and gzipped files;
// "-" reads standard input. The fetcher is consulted for every non-LI
// record's homology sequence and may be nil only for LI-only input.
func NewReader(path string, ref reference.Fetcher) (*Reader, error) {
	rd, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("open pindel report %s: %w", path, err)
	}
	return &Reader{
		reader: rd.Reader,
		closer: rd,
		ref:    ref,
		logger: zap.NewNop(),
	}, nil
}

// NewReaderFrom creates a Reader over an arbitrary source.
func NewReaderFrom(r io.Reader, ref reference.Fetcher) *Reader {
	return &Reader{
		reader: bufio.NewReader(r),
		ref:    ref,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for diagnostics.
func (r *Reader) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Next returns the next parsed record.
// Returns nil, nil when the report is exhausted.
func (r *Reader) Next() (*Record, error) {
	for {
		line, err := r.reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("read pindel line: %w", err)
			}
			if line == "" {
				return nil, nil
			}
		}
		r.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if !strings.Contains(line, dataMarker) {
			continue
		}

		rec, perr := ParseRecord(line, r.ref)
		if perr != nil {
			if pe, ok := perr.(*ParseError); ok {
				pe.Line = r.lineNumber
			}
			return nil, perr
		}
		return rec, nil
	}
}

// LineNumber returns the number of the last line read.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
