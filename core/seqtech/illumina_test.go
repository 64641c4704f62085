// core/seqtech/illumina_test.go
package seqtech

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIlluminaExtract(t *testing.T) {
	g := New(Illumina, testLogger())

	name := "INSTR1:7:FC001:2:1101:1000:2000 1:N:0:ATCG"
	require.True(t, g.Accepts(name))

	fields, err := g.Extract(name)
	require.NoError(t, err)
	assert.Equal(t, Fields{
		"instrument_id":  "INSTR1",
		"run_number":     7,
		"flow_cell_id":   "FC001",
		"flow_cell_lane": 2,
	}, fields)
}

func TestIlluminaExtractDeterministic(t *testing.T) {
	name := "M00123:42:A1B2C:1:2106:11943:2185 2:Y:18:1"
	first, err := New(Illumina, testLogger()).Extract(name)
	require.NoError(t, err)
	second, err := New(Illumina, testLogger()).Extract(name)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIlluminaRejects(t *testing.T) {
	g := New(Illumina, testLogger())
	for _, name := range []string{
		"m64017_191118_150849/43322019/ccs",
		"INSTR1:7:FC001:2:1101:1000:2000",      // no comment group
		"INSTR1:7:FC001:2:1101:1000:2000 3:N:0:ATCG", // bad pair member
		"",
	} {
		assert.False(t, g.Accepts(name), "name %q", name)
		fields, err := g.Extract(name)
		require.NoError(t, err)
		assert.Empty(t, fields)
	}
}
