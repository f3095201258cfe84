package pindel

// Genotype calls.
const (
	GenotypeRef = "0/0"
	GenotypeHet = "0/1"
	GenotypeHom = "1/1"
)

// Fixed genotyping thresholds.
const (
	minCoverage = 10
	hetCutoff   = 0.2
	homCutoff   = 0.8
)

// deriveInsertionGenotype genotypes I and LI calls, which carry no
// unique-read breakdown: any upstream or downstream support at all is
// called heterozygous.
func deriveInsertionGenotype(upSupport, downSupport int64) string {
	if upSupport+downSupport > 0 {
		return GenotypeHet
	}
	return GenotypeRef
}

// deriveGenotype converts unique read-support counts into a zygosity
// call. Below minCoverage total reads the call is homozygous-reference
// regardless of the allele fraction.
func deriveGenotype(eventReads, refReads int64) string {
	if eventReads+refReads < minCoverage {
		return GenotypeRef
	}
	fraction := float64(eventReads) / float64(eventReads+refReads)
	switch {
	case fraction < hetCutoff:
		return GenotypeRef
	case fraction < homCutoff:
		return GenotypeHet
	default:
		return GenotypeHom
	}
}
