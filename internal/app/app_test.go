// internal/app/app_test.go
package app

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsleuth/internal/version"
)

func runApp(args ...string) (code int, stdout, stderr string) {
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func writeFastq(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := `@M01234:23:000000000-ABCDE:1:1101:1234:5678 1:N:0:1
ACGTACGT
+
IIIIIIII
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNoArgsPrintsUsage(t *testing.T) {
	code, out, _ := runApp()
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := runApp("--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, version.Version)
}

func TestBadFlagExitsUsageError(t *testing.T) {
	code, _, errOut := runApp("--no-such-flag")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestBadExtensionExitsUsageError(t *testing.T) {
	code, _, errOut := runApp("reads.txt")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "not a fastq file")
}

func TestEndToEndCSV(t *testing.T) {
	path := writeFastq(t, "sample_miseq.fastq")
	code, out, errOut := runApp("--sort", "--quiet", path)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "sample_miseq.fastq", rows[1][0])
	assert.Equal(t, "fastq", rows[1][1])
	assert.Equal(t, "Illumina", rows[1][2])
	assert.Contains(t, rows[1][4], `"instrument_id":"M01234"`)
}

func TestEndToEndJSON(t *testing.T) {
	path := writeFastq(t, "sample_miseq.fastq")
	code, out, errOut := runApp("--output", "json", "--quiet", path)
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.Contains(t, out, `"predicted_tech": "Illumina"`)
}

func TestFileListManifest(t *testing.T) {
	fq := writeFastq(t, "run_miseq.fastq")
	manifest := filepath.Join(t.TempDir(), "files.csv")
	require.NoError(t, os.WriteFile(manifest,
		[]byte("file_type,filename,filepath\nfastq,run_miseq.fastq,"+fq+"\n"), 0o644))

	code, out, errOut := runApp("--file-list", manifest, "--quiet")
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.Contains(t, out, "Illumina")
}

func TestMissingFileListExitsUsageError(t *testing.T) {
	code, _, errOut := runApp("--file-list", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}
