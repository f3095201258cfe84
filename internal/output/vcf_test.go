package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_HeaderAndRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader("tumor"))
	require.NoError(t, w.WriteRecord(&Record{
		Chrom: "20",
		Pos:   101,
		Ref:   "N",
		Alt:   "<DEL>",
		Info: []InfoField{
			{Key: "END", Value: "109"},
			{Key: "SVTYPE", Value: "DEL"},
		},
		Genotype: "0/1",
	}))
	require.NoError(t, w.Flush())

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "##fileformat=VCFv4.1", lines[0])
	assert.Equal(t, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\ttumor", lines[len(lines)-2])
	assert.Equal(t, "20\t101\t.\tN\t<DEL>\t.\t.\tEND=109;SVTYPE=DEL\tGT\t0/1", lines[len(lines)-1])

	// Every emitted INFO key must be declared in the header.
	assert.Contains(t, out, "##INFO=<ID=END,")
	assert.Contains(t, out, "##INFO=<ID=SVTYPE,")
	assert.Contains(t, out, "##FORMAT=<ID=GT,")
}

func TestWriter_EmptyFieldsBecomeDots(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteRecord(&Record{Chrom: "1", Pos: 5, Genotype: "0/0"}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "1\t5\t.\t.\t.\t.\t.\t.\tGT\t0/0\n", buf.String())
}
