// core/seqtech/factory_test.go
package seqtech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatch(t *testing.T) {
	for _, tech := range []Technology{Illumina, PacBio, OxfordNanopore, TenXGenomics, Dovetail} {
		g := New(tech, testLogger())
		require.NotNil(t, g)
		_, isSentinel := g.(*sentinelGrammar)
		assert.False(t, isSentinel, "tech %s must have a dedicated grammar", tech)
	}
}

// Technologies without a parser of their own (and Unknown/Other themselves)
// fall back to the sentinel grammar, which accepts everything and reports
// the unimplemented-parser marker.
func TestNewFallsBackToSentinel(t *testing.T) {
	for _, tech := range []Technology{BGI, CompleteGenomics, StrandSeq, Moleculo, IonTorrent, Assembly, Other, Unknown, Technology("Garbled")} {
		g := New(tech, testLogger())
		require.True(t, g.Accepts("anything at all"))

		fields, err := g.Extract("anything at all")
		require.NoError(t, err)
		assert.Equal(t, Fields{"tech": SentinelTech, "read_names": "anything at all"}, fields)
		assert.Equal(t, []string{"tech", "read_names"}, g.FieldNames())
	}
}

// Grammar instances are file-scoped: New must hand out a fresh instance each
// time so no state leaks between files.
func TestNewReturnsFreshInstances(t *testing.T) {
	a := New(OxfordNanopore, testLogger())
	b := New(OxfordNanopore, testLogger())
	assert.NotSame(t, a, b)
}

func TestNewNilLogger(t *testing.T) {
	assert.NotNil(t, New(Illumina, nil))
}
