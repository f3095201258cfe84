// Package output writes converted structural-variant calls as VCF.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// InfoField is one INFO key/value pair. Fields are kept as an ordered
// slice so output is deterministic.
type InfoField struct {
	Key   string
	Value string
}

// Record is a single-sample VCF data line ready for emission.
type Record struct {
	Chrom    string
	Pos      int64
	ID       string
	Ref      string
	Alt      string // symbolic allele, e.g. "<DEL>"
	Qual     string
	Filter   string
	Info     []InfoField
	Genotype string // GT value for the single sample column
}

// templateHeader declares every INFO/ALT/FORMAT key the converter can
// emit. Written before the #CHROM line.
var templateHeader = []string{
	`##fileformat=VCFv4.1`,
	`##INFO=<ID=END,Number=1,Type=Integer,Description="End position of the variant described in this record">`,
	`##INFO=<ID=SVLEN,Number=.,Type=Integer,Description="Difference in length between REF and ALT alleles">`,
	`##INFO=<ID=SVTYPE,Number=1,Type=String,Description="Type of structural variant">`,
	`##INFO=<ID=PD_NUM_NT_ADDED,Number=.,Type=Integer,Description="Pindel: lengths of inserted non-template sequences">`,
	`##INFO=<ID=PD_NT_ADDED,Number=.,Type=String,Description="Pindel: inserted non-template sequences">`,
	`##INFO=<ID=PD_BP_RANGE_START,Number=1,Type=Integer,Description="Pindel: lower bound of the breakpoint uncertainty range">`,
	`##INFO=<ID=PD_BP_RANGE_END,Number=1,Type=Integer,Description="Pindel: upper bound of the breakpoint uncertainty range">`,
	`##INFO=<ID=PD_READ_SUPP,Number=1,Type=Integer,Description="Pindel: number of supporting reads">`,
	`##INFO=<ID=PD_UNIQ_READ_SUPP,Number=1,Type=Integer,Description="Pindel: number of unique supporting reads">`,
	`##INFO=<ID=PD_UP_READ_SUPP,Number=1,Type=Integer,Description="Pindel: supporting reads with upstream anchors">`,
	`##INFO=<ID=PD_UP_UNIQ_READ_SUPP,Number=1,Type=Integer,Description="Pindel: unique supporting reads with upstream anchors">`,
	`##INFO=<ID=PD_DOWN_READ_SUPP,Number=1,Type=Integer,Description="Pindel: supporting reads with downstream anchors">`,
	`##INFO=<ID=PD_DOWN_UNIQ_READ_SUPP,Number=1,Type=Integer,Description="Pindel: unique supporting reads with downstream anchors">`,
	`##INFO=<ID=PD_SIMPLE_SCORE,Number=1,Type=Integer,Description="Pindel: simple score">`,
	`##INFO=<ID=PD_SUM_MAPQ,Number=1,Type=Integer,Description="Pindel: summed mapping quality of anchor reads">`,
	`##INFO=<ID=PD_NUM_SAMPLE,Number=1,Type=Integer,Description="Pindel: number of samples scanned">`,
	`##INFO=<ID=PD_NUM_SAMPLE_SUPP,Number=1,Type=Integer,Description="Pindel: number of supporting samples">`,
	`##INFO=<ID=PD_NUM_SAMPLE_UNIQ_SUPP,Number=1,Type=Integer,Description="Pindel: number of samples with unique supporting reads">`,
	`##INFO=<ID=PD_HOMLEN,Number=1,Type=Integer,Description="Pindel: length of breakpoint microhomology">`,
	`##INFO=<ID=PD_HOMSEQ,Number=1,Type=String,Description="Pindel: breakpoint microhomology sequence">`,
	`##ALT=<ID=DEL,Description="Deletion">`,
	`##ALT=<ID=INS,Description="Insertion">`,
	`##ALT=<ID=INV,Description="Inversion">`,
	`##ALT=<ID=DUP:TANDEM,Description="Tandem duplication">`,
	`##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">`,
}

// Writer emits VCF to an underlying writer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a VCF writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the template header and the #CHROM line for a
// single-sample file.
func (vw *Writer) WriteHeader(sample string) error {
	for _, line := range templateHeader {
		if _, err := vw.w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	_, err := vw.w.WriteString("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\t" + sample + "\n")
	return err
}

// WriteRecord writes one data line.
func (vw *Writer) WriteRecord(r *Record) error {
	var lb strings.Builder
	lb.Grow(256)

	lb.WriteString(r.Chrom)
	lb.WriteByte('\t')
	lb.WriteString(strconv.FormatInt(r.Pos, 10))
	lb.WriteByte('\t')
	lb.WriteString(orDot(r.ID))
	lb.WriteByte('\t')
	lb.WriteString(orDot(r.Ref))
	lb.WriteByte('\t')
	lb.WriteString(orDot(r.Alt))
	lb.WriteByte('\t')
	lb.WriteString(orDot(r.Qual))
	lb.WriteByte('\t')
	lb.WriteString(orDot(r.Filter))
	lb.WriteByte('\t')
	if len(r.Info) == 0 {
		lb.WriteByte('.')
	}
	for i, field := range r.Info {
		if i > 0 {
			lb.WriteByte(';')
		}
		lb.WriteString(field.Key)
		if field.Value != "" {
			lb.WriteByte('=')
			lb.WriteString(field.Value)
		}
	}
	lb.WriteString("\tGT\t")
	lb.WriteString(r.Genotype)
	lb.WriteByte('\n')

	_, err := vw.w.WriteString(lb.String())
	return err
}

// Flush flushes buffered output.
func (vw *Writer) Flush() error {
	return vw.w.Flush()
}

func orDot(s string) string {
	if s == "" {
		return "."
	}
	return s
}
