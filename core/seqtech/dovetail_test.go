// core/seqtech/dovetail_test.go
package seqtech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDovetailExtract(t *testing.T) {
	g := New(Dovetail, testLogger())

	name := "E00526:124:H2NYVCCXY:8:1101:7111:1555 1:N:0:CGCTCATT"
	require.True(t, g.Accepts(name))

	fields, err := g.Extract(name)
	require.NoError(t, err)
	assert.Equal(t, Fields{
		"Library_Field_1": "E00526",
		"Library_Field_2": "124",
		"Library_Field_3": "H2NYVCCXY",
		"Library_Field_4": "8",
		"Library_Field_5": "1101",
	}, fields)
}

func TestDovetailRejects(t *testing.T) {
	g := New(Dovetail, testLogger())
	for _, name := range []string{
		"E00526:124:H2NYVCCXY:8:1101:7111:1555",            // no second group
		"E00526:124:H2NYVCCXY:8:1101 1:N:0:CGCTCATT",       // first group too short
		"E00526:124:H2NYVCCXY:8:1101:7111:1555 NN:N:0:ATCG", // second group shape
	} {
		assert.False(t, g.Accepts(name), "name %q", name)
		fields, err := g.Extract(name)
		require.NoError(t, err)
		assert.Empty(t, fields)
	}
}
