// Package breakdancer parses BreakDancer structural-variant reports.
//
// The format is whitespace-delimited with 11 positional columns:
// chr1, pos1, orientation1, chr2, pos2, orientation2, SV type, SV size,
// confidence score, total supporting read pairs, and a per-library
// read-pair breakdown (groups separated by ':', each 'library|count').
// Columns 1-3 and 4-6 locate the two SV breakpoints; the orientation
// strings record strand counts in the anchoring regions and are kept
// verbatim.
package breakdancer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robrollback/metasv/internal/sv"
)

// Source tags BreakDancer-derived intervals.
const Source = "BreakDancer"

// column names in report order, used for error messages.
var columns = []string{
	"chr1", "pos1", "orientation1", "chr2", "pos2", "orientation2",
	"sv_type", "sv_len", "score", "num_read_pairs", "read_pairs_per_lib",
}

// Record is one parsed BreakDancer call. Immutable after parsing.
type Record struct {
	Chrom1 string
	Pos1   int64
	Ori1   string // opaque strand-count string, e.g. "5+1-"
	Chrom2 string
	Pos2   int64
	Ori2   string

	SVType string // DEL, INS, INV, ITX, CTX or Unknown
	SVLen  int64  // signed size in bp, meaningless for CTX
	Score  float64

	SupportingReadPairs int64
	// ReadPairsPerLib dissects the supporting pairs by library tag.
	ReadPairsPerLib map[string]int64
}

// ParseRecord parses one non-header report line.
func ParseRecord(line string) (*Record, error) {
	fields := strings.Fields(line)
	if len(fields) < len(columns) {
		return nil, &ParseError{
			Message: fmt.Sprintf("missing column %d (%s): found %d fields", len(fields), columns[len(fields)], len(fields)),
		}
	}

	r := &Record{
		Chrom1: fields[0],
		Ori1:   fields[2],
		Chrom2: fields[3],
		Ori2:   fields[5],
		SVType: fields[6],
	}

	var err error
	if r.Pos1, err = parseInt(fields[1], "pos1"); err != nil {
		return nil, err
	}
	if r.Pos2, err = parseInt(fields[4], "pos2"); err != nil {
		return nil, err
	}
	if r.SVLen, err = parseInt(fields[7], "sv_len"); err != nil {
		return nil, err
	}
	if r.Score, err = strconv.ParseFloat(fields[8], 64); err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("invalid score: %s", fields[8])}
	}
	if r.SupportingReadPairs, err = parseInt(fields[9], "num_read_pairs"); err != nil {
		return nil, err
	}
	if r.ReadPairsPerLib, err = parseLibCounts(fields[10]); err != nil {
		return nil, err
	}

	return r, nil
}

// parseLibCounts parses the compound per-library column, e.g.
// "nA|2:tB|1" -> {nA: 2, tB: 1}. A library tag repeated within one
// line keeps the last count, matching BreakDancer's own convention.
func parseLibCounts(field string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, group := range strings.Split(field, ":") {
		lib, countStr, found := strings.Cut(group, "|")
		if !found {
			return nil, &ParseError{Message: fmt.Sprintf("library group %q is not library|count", group)}
		}
		count, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid read-pair count for library %s: %s", lib, countStr)}
		}
		counts[lib] = count
	}
	return counts, nil
}

func parseInt(s, column string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Message: fmt.Sprintf("invalid %s: %s", column, s)}
	}
	return n, nil
}

// ToSVInterval converts the record to the unified interval model.
// Only DEL and INS calls are convertible; any other type returns nil,
// which is a normal outcome the caller must check for.
//
// The reported coordinate is the left-most plausible breakpoint, so the
// confidence interval always has a zero lower offset.
func (r *Record) ToSVInterval() *sv.Interval {
	switch r.SVType {
	case "DEL":
		size := r.SVLen
		if size < 0 {
			size = -size
		}
		return &sv.Interval{
			Chrom:   r.Chrom1,
			Start:   r.Pos1,
			End:     r.Pos1 + size,
			Type:    sv.Del,
			Length:  r.SVLen,
			Sources: []string{Source},
			CIPos:   &sv.ConfidenceInterval{Lower: 0, Upper: r.Pos2 - r.Pos1 - size},
			Native:  r,
		}
	case "INS":
		return &sv.Interval{
			Chrom:   r.Chrom1,
			Start:   r.Pos1,
			End:     r.Pos1,
			Type:    sv.Ins,
			Length:  r.SVLen,
			Sources: []string{Source},
			CIPos:   &sv.ConfidenceInterval{Lower: 0, Upper: r.Pos2 - r.Pos1},
			Native:  r,
		}
	default:
		return nil
	}
}

// ParseError represents a malformed report line.
type ParseError struct {
	Line    int // 0 when the line number is unknown
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("breakdancer parse error at line %d: %s", e.Line, e.Message)
	}
	return "breakdancer parse error: " + e.Message
}
