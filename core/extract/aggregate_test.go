// core/extract/aggregate_test.go
package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsleuth-core/seqtech"
)

// Two reads differing only in flow_cell_lane: the lane becomes a list of the
// distinct values, everything else collapses to a scalar.
func TestAggregateCollapseAndList(t *testing.T) {
	metas := []seqtech.Fields{
		{"instrument_id": "INSTR1", "run_number": 7, "flow_cell_id": "FC001", "flow_cell_lane": 2},
		{"instrument_id": "INSTR1", "run_number": 7, "flow_cell_id": "FC001", "flow_cell_lane": 3},
	}

	fm := Aggregate(metas)
	assert.Equal(t, "INSTR1", fm["instrument_id"])
	assert.Equal(t, 7, fm["run_number"])
	assert.Equal(t, "FC001", fm["flow_cell_id"])

	lanes, ok := fm["flow_cell_lane"].([]any)
	require.True(t, ok, "disagreeing key must become a list, got %T", fm["flow_cell_lane"])
	assert.ElementsMatch(t, []any{2, 3}, lanes)
}

func TestAggregateEmptyEntriesContributeNothing(t *testing.T) {
	metas := []seqtech.Fields{
		{},
		{"movie_name": "m64017_191118_150849", "read_type": "CCS"},
		{},
		{"movie_name": "m64017_191118_150849", "read_type": "CCS"},
	}

	fm := Aggregate(metas)
	assert.Equal(t, FileMetadata{
		"movie_name": "m64017_191118_150849",
		"read_type":  "CCS",
	}, fm)
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]seqtech.Fields{{}, {}}))
}

// The scalar-vs-list outcome depends only on the set of distinct values per
// key, not on arrival order.
func TestAggregatePermutationInvariant(t *testing.T) {
	forward := []seqtech.Fields{
		{"sample": "HG002", "library": "L1"},
		{"sample": "HG002", "library": "L2"},
		{"sample": "HG002", "library": "L1"},
	}
	backward := []seqtech.Fields{forward[2], forward[1], forward[0]}

	a, b := Aggregate(forward), Aggregate(backward)
	assert.Equal(t, a["sample"], b["sample"])
	assert.ElementsMatch(t, a["library"].([]any), b["library"].([]any))
}

// Aggregating an already-reduced output (re-wrapped as one single-key entry
// per field) reproduces it.
func TestAggregateIdempotent(t *testing.T) {
	fm := Aggregate([]seqtech.Fields{
		{"instrument_id": "INSTR1", "flow_cell_lane": 2},
		{"instrument_id": "INSTR1", "flow_cell_lane": 2},
	})

	var rewrapped []seqtech.Fields
	for k, v := range fm {
		rewrapped = append(rewrapped, seqtech.Fields{k: v})
	}
	assert.Equal(t, fm, Aggregate(rewrapped))
}

func TestAggregateUnknownTechSentinel(t *testing.T) {
	g := seqtech.New(seqtech.Unknown, nil)
	metas := All(g, []string{"garbled-1", "garbled-1", "garbled-2"}, testLogger())

	fm := Aggregate(metas)
	assert.Equal(t, seqtech.SentinelTech, fm["tech"])
	names, ok := fm["read_names"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"garbled-1", "garbled-2"}, names)
}
