// Package sv defines the unified structural-variant interval model shared
// by all caller-specific readers.
package sv

// Type is a canonical structural-variant type.
type Type string

// Canonical SV types. DupTandem uses the VCF symbolic-allele spelling.
const (
	Del       Type = "DEL"
	Ins       Type = "INS"
	Inv       Type = "INV"
	DupTandem Type = "DUP:TANDEM"
	ITX       Type = "ITX"
	CTX       Type = "CTX"
)

// ConfidenceInterval holds signed offsets around an anchor coordinate.
// The true breakpoint lies within [pos+Lower, pos+Upper].
type ConfidenceInterval struct {
	Lower int64
	Upper int64
}

// Interval is the normalized representation of a single SV call.
// Start and End are 1-based inclusive. Point calls (insertions) have
// Start == End; their positional uncertainty is carried in CIPos or
// Wiggle, never by widening the span.
type Interval struct {
	Chrom  string
	Start  int64
	End    int64
	Type   Type
	Length int64 // signed, caller convention (negative for some insertions)

	Sources []string            // caller provenance tags
	CIPos   *ConfidenceInterval // nil when no confidence interval was computed
	Wiggle  int64               // fixed uncertainty radius, 0 when unused

	Genotype string // zygosity call ("0/0", "0/1", "1/1"), "" when absent

	// Native points back at the caller-specific record that produced
	// this interval. Informational only.
	Native any
}

// IsPoint returns true for point calls (Start == End).
func (iv *Interval) IsPoint() bool {
	return iv.Start == iv.End
}

// Span returns the number of reference bases covered by the interval.
func (iv *Interval) Span() int64 {
	return iv.End - iv.Start
}
