// Package pindel parses Pindel structural-variant reports.
//
// Each variant is summarized on a single line containing the literal
// token "ChrID"; the surrounding header and read-alignment lines are
// skipped. The column layout depends on the subtype tag: regular
// indels, inversions and tandem duplications (I, D, INV, TD) carry NT
// insertion descriptors, breakpoint/BP_range pairs and a full
// read-support block, while large insertions (LI) carry only the two
// breakpoints and their support counts. Both layouts end with a
// repeated five-field group per sample.
package pindel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robrollback/metasv/internal/reference"
	"github.com/robrollback/metasv/internal/sv"
)

// Source tags Pindel-derived intervals.
const Source = "Pindel"

// insertionWiggle is the fixed positional-uncertainty radius attached
// to normalized insertion calls. Pindel insertion breakpoints have low
// positional confidence and no data-derived interval.
const insertionWiggle = 100

// ErrNoReference is returned when a record requires a homology-sequence
// fetch but no reference fetcher was supplied.
var ErrNoReference = errors.New("reference fetcher required for homology sequence")

// svTypes maps Pindel subtype tags to canonical SV types.
var svTypes = map[string]sv.Type{
	"I":   sv.Ins,
	"D":   sv.Del,
	"LI":  sv.Ins,
	"TD":  sv.DupTandem,
	"INV": sv.Inv,
}

// BPRange is the breakpoint-uncertainty range: due to microhomology the
// breakpoints may shift anywhere within it.
type BPRange struct {
	Lower int64
	Upper int64
}

// SampleSupport is one per-sample trailing group. The reference-support
// counts are only populated for non-LI records.
type SampleSupport struct {
	Name              string
	RefSupportAtStart int64
	RefSupportAtEnd   int64
	PlusSupport       int64
	MinusSupport      int64
}

// Support is the read-support block present on all non-LI records.
type Support struct {
	NumNTAdded []int64  // lengths of inserted non-template fragments
	NTAdded    []string // sequences of inserted non-template fragments

	ReadSupport           int64
	UniqueReadSupport     int64
	UpUniqueReadSupport   int64
	DownUniqueReadSupport int64

	SimpleScore int64 // ("#+" + 1) * ("#-" + 1)
	SumMapQ     int64 // summed mapping quality of anchor reads

	NumSamples                 int64
	NumSupportingSamples       int64
	NumUniqueSupportingSamples int64
}

// Record is one parsed Pindel call. Support is nil for the LI layout.
// Immutable after parsing; the genotype is derived at construction.
type Record struct {
	SVType   string // I, D, INV, TD or LI
	SVLen    int64  // 0 for LI
	Chrom    string
	StartPos int64
	EndPos   int64
	BPRange  BPRange

	UpReadSupport   int64
	DownReadSupport int64
	Support         *Support
	Samples         []SampleSupport

	HomLen   int64
	HomSeq   string
	Genotype string
}

// Field offsets within a report line. The non-LI offsets skip the
// literal marker tokens (NT, ChrID, BP, BP_range, Supports, +, -, S1,
// SUM_MS, NumSupSamples) interleaved with the values.
const (
	nonLISampleOffset = 31
	liSampleOffset    = 10
	sampleGroupWidth  = 5
)

// ParseRecord parses one variant summary line. The reference fetcher is
// required for non-LI records, whose homology sequence is read from the
// reference; LI records never consult it.
func ParseRecord(line string, ref reference.Fetcher) (*Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, &ParseError{Message: fmt.Sprintf("expected at least 2 fields, found %d", len(fields))}
	}

	r := &Record{SVType: fields[1]}
	var err error
	if r.SVType == "LI" {
		err = r.parseLargeInsertion(fields)
	} else {
		err = r.parseStandard(fields, ref)
	}
	if err != nil {
		return nil, err
	}

	if r.SVType == "I" || r.SVType == "LI" {
		r.Genotype = deriveInsertionGenotype(r.UpReadSupport, r.DownReadSupport)
	} else {
		r.Genotype = deriveGenotype(r.Support.UniqueReadSupport,
			r.Support.UpUniqueReadSupport+r.Support.DownUniqueReadSupport)
	}

	return r, nil
}

// parseStandard reads the I/D/INV/TD layout.
func (r *Record) parseStandard(fields []string, ref reference.Fetcher) error {
	if len(fields) < nonLISampleOffset {
		return &ParseError{
			Message: fmt.Sprintf("%s record: expected at least %d fields, found %d", r.SVType, nonLISampleOffset, len(fields)),
		}
	}

	s := &Support{}
	r.Support = s

	var err error
	if r.SVLen, err = parseInt(fields[2], "sv_len"); err != nil {
		return err
	}
	if s.NumNTAdded, err = parseIntList(fields[4], "nt_lengths"); err != nil {
		return err
	}
	s.NTAdded = parseNTSequences(fields[5])
	r.Chrom = fields[7]
	if r.StartPos, err = parseInt(fields[9], "bp_start"); err != nil {
		return err
	}
	if r.EndPos, err = parseInt(fields[10], "bp_end"); err != nil {
		return err
	}
	if r.BPRange.Lower, err = parseInt(fields[12], "bp_range_start"); err != nil {
		return err
	}
	if r.BPRange.Upper, err = parseInt(fields[13], "bp_range_end"); err != nil {
		return err
	}
	if s.ReadSupport, err = parseInt(fields[15], "read_support"); err != nil {
		return err
	}
	if s.UniqueReadSupport, err = parseInt(fields[16], "unique_read_support"); err != nil {
		return err
	}
	if r.UpReadSupport, err = parseInt(fields[18], "upstream_read_support"); err != nil {
		return err
	}
	if s.UpUniqueReadSupport, err = parseInt(fields[19], "upstream_unique_read_support"); err != nil {
		return err
	}
	if r.DownReadSupport, err = parseInt(fields[21], "downstream_read_support"); err != nil {
		return err
	}
	if s.DownUniqueReadSupport, err = parseInt(fields[22], "downstream_unique_read_support"); err != nil {
		return err
	}
	if s.SimpleScore, err = parseInt(fields[24], "simple_score"); err != nil {
		return err
	}
	if s.SumMapQ, err = parseInt(fields[26], "sum_mapq"); err != nil {
		return err
	}
	if s.NumSamples, err = parseInt(fields[27], "num_samples"); err != nil {
		return err
	}
	if s.NumSupportingSamples, err = parseInt(fields[29], "num_supporting_samples"); err != nil {
		return err
	}
	if s.NumUniqueSupportingSamples, err = parseInt(fields[30], "num_unique_supporting_samples"); err != nil {
		return err
	}

	if r.Samples, err = parseSampleGroups(fields[nonLISampleOffset:], false); err != nil {
		return err
	}

	r.HomLen = r.BPRange.Upper - r.EndPos
	if ref == nil {
		return ErrNoReference
	}
	// The fetcher is zero-based half-open; Pindel coordinates are
	// 1-based inclusive.
	homseq, err := ref.Fetch(r.Chrom, r.EndPos-1, r.BPRange.Upper-1)
	if err != nil {
		return fmt.Errorf("fetch homology sequence: %w", err)
	}
	r.HomSeq = homseq

	return nil
}

// parseLargeInsertion reads the LI layout. The uncertainty range is the
// breakpoint pair itself; LI records carry no separate estimate and no
// homology.
func (r *Record) parseLargeInsertion(fields []string) error {
	if len(fields) < liSampleOffset {
		return &ParseError{
			Message: fmt.Sprintf("LI record: expected at least %d fields, found %d", liSampleOffset, len(fields)),
		}
	}

	r.Chrom = fields[3]
	var err error
	if r.StartPos, err = parseInt(fields[4], "left_breakpoint"); err != nil {
		return err
	}
	if r.UpReadSupport, err = parseInt(fields[6], "upstream_read_support"); err != nil {
		return err
	}
	if r.EndPos, err = parseInt(fields[7], "right_breakpoint"); err != nil {
		return err
	}
	// fields[8] is the literal "-" marker; the count follows it.
	if r.DownReadSupport, err = parseInt(fields[9], "downstream_read_support"); err != nil {
		return err
	}
	r.BPRange = BPRange{Lower: r.StartPos, Upper: r.EndPos}

	r.Samples, err = parseSampleGroups(fields[liSampleOffset:], true)
	return err
}

// parseSampleGroups splits the trailing per-sample region into
// five-field groups. A remainder means the line is truncated or the
// layout was misidentified, so it is rejected rather than ignored.
func parseSampleGroups(fields []string, largeInsertion bool) ([]SampleSupport, error) {
	if len(fields)%sampleGroupWidth != 0 {
		return nil, &ParseError{
			Message: fmt.Sprintf("per-sample fields not a multiple of %d: %d trailing fields", sampleGroupWidth, len(fields)),
		}
	}

	samples := make([]SampleSupport, 0, len(fields)/sampleGroupWidth)
	for i := 0; i < len(fields); i += sampleGroupWidth {
		ss := SampleSupport{Name: fields[i]}
		var err error
		if largeInsertion {
			// name, "+", plus support, "-", minus support
			if ss.PlusSupport, err = parseInt(fields[i+2], "sample plus_support"); err != nil {
				return nil, err
			}
			if ss.MinusSupport, err = parseInt(fields[i+4], "sample minus_support"); err != nil {
				return nil, err
			}
		} else {
			if ss.RefSupportAtStart, err = parseInt(fields[i+1], "sample ref_support_at_start"); err != nil {
				return nil, err
			}
			if ss.RefSupportAtEnd, err = parseInt(fields[i+2], "sample ref_support_at_end"); err != nil {
				return nil, err
			}
			if ss.PlusSupport, err = parseInt(fields[i+3], "sample plus_support"); err != nil {
				return nil, err
			}
			if ss.MinusSupport, err = parseInt(fields[i+4], "sample minus_support"); err != nil {
				return nil, err
			}
		}
		samples = append(samples, ss)
	}
	return samples, nil
}

// parseIntList parses a colon-separated integer list, e.g. "12:3".
func parseIntList(field, name string) ([]int64, error) {
	parts := strings.Split(field, ":")
	values := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid %s: %s", name, p)}
		}
		values = append(values, v)
	}
	return values, nil
}

// parseNTSequences parses the colon-separated, quoted NT sequence list,
// e.g. `"ACA":"TT"` -> [ACA TT].
func parseNTSequences(field string) []string {
	parts := strings.Split(field, ":")
	seqs := make([]string, len(parts))
	for i, p := range parts {
		seqs[i] = strings.ReplaceAll(p, `"`, "")
	}
	return seqs
}

func parseInt(s, name string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Message: fmt.Sprintf("invalid %s: %s", name, s)}
	}
	return n, nil
}

// ToSVInterval converts the record to the unified interval model.
// Insertions become point intervals carrying the derived genotype and a
// fixed wiggle radius; unknown subtypes return nil.
func (r *Record) ToSVInterval() *sv.Interval {
	svType, ok := svTypes[r.SVType]
	if !ok {
		return nil
	}

	if svType != sv.Ins {
		return &sv.Interval{
			Chrom:   r.Chrom,
			Start:   r.StartPos,
			End:     r.EndPos,
			Type:    svType,
			Length:  r.SVLen,
			Sources: []string{Source},
			Native:  r,
		}
	}

	return &sv.Interval{
		Chrom:    r.Chrom,
		Start:    r.StartPos,
		End:      r.StartPos,
		Type:     svType,
		Length:   r.SVLen,
		Sources:  []string{Source},
		Wiggle:   insertionWiggle,
		Genotype: r.Genotype,
		Native:   r,
	}
}

// ParseError represents a malformed report line.
type ParseError struct {
	Line    int // 0 when the line number is unknown
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pindel parse error at line %d: %s", e.Line, e.Message)
	}
	return "pindel parse error: " + e.Message
}
