// core/extract/driver_test.go
package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsleuth-core/seqtech"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAllPreservesOrderAndLength(t *testing.T) {
	g := seqtech.New(seqtech.Illumina, testLogger())
	names := []string{
		"INSTR1:7:FC001:2:1101:1000:2000 1:N:0:ATCG",
		"not a valid read name",
		"INSTR1:7:FC001:3:1101:1000:2000 1:N:0:ATCG",
	}

	metas := All(g, names, testLogger())
	require.Len(t, metas, 3)

	assert.Equal(t, "INSTR1", metas[0]["instrument_id"])
	assert.Empty(t, metas[1], "rejected read must contribute an empty map, not a hole")
	assert.Equal(t, 3, metas[2]["flow_cell_lane"])
}

// A read that passes the convention check but fails during decoding (here: a
// nanopore read without start_time) degrades to empty instead of aborting
// the remaining reads.
func TestAllToleratesExtractErrors(t *testing.T) {
	g := seqtech.New(seqtech.OxfordNanopore, testLogger())
	broken := "0a1b2c3d-0123-4567-89ab-cdef01234567 runid=5c7c1ce6b0a1f65dbef40e1b4f8e7dca13b15b97 read=9 ch=1"
	good := broken + " start_time=2021-01-01T00:00:00Z"

	metas := All(g, []string{broken, good}, testLogger())
	require.Len(t, metas, 2)
	assert.Empty(t, metas[0])
	assert.Equal(t, "2021-01-01", metas[1]["earliest_start_date"])
}

func TestAllEmptyInput(t *testing.T) {
	g := seqtech.New(seqtech.Unknown, testLogger())
	assert.Empty(t, All(g, nil, testLogger()))
}
