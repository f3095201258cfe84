package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robrollback/metasv/internal/sv"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupIntervals(t *testing.T) {
	s := openInMemory(t)

	intervals := []*sv.Interval{
		{
			Chrom: "1", Start: 59257, End: 60119, Type: sv.Del, Length: 862,
			Sources: []string{"BreakDancer"},
			CIPos:   &sv.ConfidenceInterval{Lower: 0, Upper: 45},
		},
		{
			Chrom: "20", Start: 200, End: 200, Type: sv.Ins, Length: 10,
			Sources:  []string{"Pindel"},
			Wiggle:   100,
			Genotype: "0/1",
		},
	}

	require.NoError(t, s.WriteIntervals(intervals))

	count, err := s.CountIntervals()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := s.LookupRegion("1", 59000, 60000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sv.Del, got[0].Type)
	assert.Equal(t, int64(862), got[0].Length)
	assert.Equal(t, []string{"BreakDancer"}, got[0].Sources)
	require.NotNil(t, got[0].CIPos)
	assert.Equal(t, int64(45), got[0].CIPos.Upper)
	assert.Empty(t, got[0].Genotype)

	got, err = s.LookupRegion("20", 150, 250)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsPoint())
	assert.Equal(t, int64(100), got[0].Wiggle)
	assert.Equal(t, "0/1", got[0].Genotype)
	assert.Nil(t, got[0].CIPos)
}

func TestLookupRegion_NoOverlap(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteIntervals([]*sv.Interval{
		{Chrom: "1", Start: 100, End: 200, Type: sv.Del, Sources: []string{"BreakDancer"}},
	}))

	got, err := s.LookupRegion("1", 500, 600)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.LookupRegion("2", 100, 200)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteIntervals_Empty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteIntervals(nil))

	count, err := s.CountIntervals()
	require.NoError(t, err)
	assert.Zero(t, count)
}
