package breakdancer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brentp/xopen"
	"go.uber.org/zap"
)

// Reader streams parsed records from a BreakDancer report. Lines
// starting with '#' are routed to the header as a side effect; all
// other lines are parsed as records. Malformed data lines abort the
// stream with an error rather than being skipped.
type Reader struct {
	reader     *bufio.Reader
	closer     io.Closer
	header     *Header
	lineNumber int
	logger     *zap.Logger
}

// NewReader opens a BreakDancer report. Supports plain and gzipped
// files; "-" reads standard input.
func NewReader(path string) (*Reader, error) {
	rd, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("open breakdancer report %s: %w", path, err)
	}
	return &Reader{
		reader: rd.Reader,
		closer: rd,
		header: NewHeader(),
		logger: zap.NewNop(),
	}, nil
}

// NewReaderFrom creates a Reader over an arbitrary source.
func NewReaderFrom(r io.Reader) *Reader {
	return &Reader{
		reader: bufio.NewReader(r),
		header: NewHeader(),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for header diagnostics.
func (r *Reader) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Next returns the next parsed record.
// Returns nil, nil when the report is exhausted.
func (r *Reader) Next() (*Record, error) {
	for {
		line, err := r.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if line == "" {
					return nil, nil
				}
				// Final line without trailing newline still counts.
			} else {
				return nil, fmt.Errorf("read breakdancer line: %w", err)
			}
		}
		r.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if line[0] == '#' {
			if herr := r.header.ParseLine(line); herr != nil {
				if pe, ok := herr.(*ParseError); ok {
					pe.Line = r.lineNumber
				}
				return nil, herr
			}
			r.logger.Debug("parsed header line",
				zap.Int("line", r.lineNumber),
				zap.String("software", r.header.Software))
			continue
		}

		rec, perr := ParseRecord(line)
		if perr != nil {
			if pe, ok := perr.(*ParseError); ok {
				pe.Line = r.lineNumber
			}
			return nil, perr
		}
		return rec, nil
	}
}

// Header returns the metadata accumulated from header lines seen so
// far. Complete only once the stream is exhausted.
func (r *Reader) Header() *Header {
	return r.header
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
