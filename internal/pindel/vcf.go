package pindel

import (
	"strconv"
	"strings"

	"github.com/robrollback/metasv/internal/output"
	"github.com/robrollback/metasv/internal/sv"
)

// ToVCFRecord converts the record to a single-sample VCF record with a
// symbolic ALT allele and every raw Pindel field under a PD_-prefixed
// INFO key. Subtypes outside the fixed mapping return nil, which the
// caller must skip.
func (r *Record) ToVCFRecord() *output.Record {
	svType, ok := svTypes[r.SVType]
	if !ok {
		return nil
	}

	var end int64
	switch svType {
	case sv.Del, sv.Inv, sv.DupTandem:
		end = r.StartPos + r.SVLen
	case sv.Ins:
		end = r.StartPos
	default:
		return nil
	}

	info := []output.InfoField{
		{Key: "END", Value: strconv.FormatInt(end, 10)},
		{Key: "SVLEN", Value: strconv.FormatInt(r.SVLen, 10)},
		{Key: "SVTYPE", Value: string(svType)},
	}
	if s := r.Support; s != nil {
		info = append(info,
			output.InfoField{Key: "PD_NUM_NT_ADDED", Value: formatIntList(s.NumNTAdded)},
			output.InfoField{Key: "PD_NT_ADDED", Value: strings.Join(s.NTAdded, ",")},
			output.InfoField{Key: "PD_READ_SUPP", Value: strconv.FormatInt(s.ReadSupport, 10)},
			output.InfoField{Key: "PD_UNIQ_READ_SUPP", Value: strconv.FormatInt(s.UniqueReadSupport, 10)},
		)
	}
	info = append(info,
		output.InfoField{Key: "PD_BP_RANGE_START", Value: strconv.FormatInt(r.BPRange.Lower, 10)},
		output.InfoField{Key: "PD_BP_RANGE_END", Value: strconv.FormatInt(r.BPRange.Upper, 10)},
		output.InfoField{Key: "PD_UP_READ_SUPP", Value: strconv.FormatInt(r.UpReadSupport, 10)},
		output.InfoField{Key: "PD_DOWN_READ_SUPP", Value: strconv.FormatInt(r.DownReadSupport, 10)},
	)
	if s := r.Support; s != nil {
		info = append(info,
			output.InfoField{Key: "PD_UP_UNIQ_READ_SUPP", Value: strconv.FormatInt(s.UpUniqueReadSupport, 10)},
			output.InfoField{Key: "PD_DOWN_UNIQ_READ_SUPP", Value: strconv.FormatInt(s.DownUniqueReadSupport, 10)},
			output.InfoField{Key: "PD_SIMPLE_SCORE", Value: strconv.FormatInt(s.SimpleScore, 10)},
			output.InfoField{Key: "PD_SUM_MAPQ", Value: strconv.FormatInt(s.SumMapQ, 10)},
			output.InfoField{Key: "PD_NUM_SAMPLE", Value: strconv.FormatInt(s.NumSamples, 10)},
			output.InfoField{Key: "PD_NUM_SAMPLE_SUPP", Value: strconv.FormatInt(s.NumSupportingSamples, 10)},
			output.InfoField{Key: "PD_NUM_SAMPLE_UNIQ_SUPP", Value: strconv.FormatInt(s.NumUniqueSupportingSamples, 10)},
		)
	}
	info = append(info,
		output.InfoField{Key: "PD_HOMLEN", Value: strconv.FormatInt(r.HomLen, 10)},
	)
	if r.HomSeq != "" {
		info = append(info, output.InfoField{Key: "PD_HOMSEQ", Value: r.HomSeq})
	}

	return &output.Record{
		Chrom:    r.Chrom,
		Pos:      r.StartPos,
		ID:       ".",
		Ref:      "N",
		Alt:      "<" + string(svType) + ">",
		Qual:     ".",
		Filter:   ".",
		Info:     info,
		Genotype: r.Genotype,
	}
}

func formatIntList(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
