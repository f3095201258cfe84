package pindel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveGenotype(t *testing.T) {
	tests := []struct {
		name       string
		eventReads int64
		refReads   int64
		want       string
	}{
		{"no coverage", 0, 0, GenotypeRef},
		{"below minimum coverage ignores fraction", 9, 0, GenotypeRef},
		{"coverage 9 high fraction", 8, 1, GenotypeRef},
		{"fraction below het cutoff", 1, 9, GenotypeRef},
		{"fraction exactly at het cutoff", 2, 8, GenotypeHet},
		{"mid fraction", 5, 5, GenotypeHet},
		{"fraction just below hom cutoff", 79, 21, GenotypeHet},
		{"fraction exactly at hom cutoff", 8, 2, GenotypeHom},
		{"pure variant", 10, 0, GenotypeHom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveGenotype(tt.eventReads, tt.refReads))
		})
	}
}

func TestDeriveInsertionGenotype(t *testing.T) {
	assert.Equal(t, GenotypeRef, deriveInsertionGenotype(0, 0))
	assert.Equal(t, GenotypeHet, deriveInsertionGenotype(1, 0))
	assert.Equal(t, GenotypeHet, deriveInsertionGenotype(0, 3))
	assert.Equal(t, GenotypeHet, deriveInsertionGenotype(4, 4))
}
