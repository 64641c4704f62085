// core/fastq/reader.go
package fastq

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

const readTries = 3

func init() {
	// Only read names are consumed; skip per-base alphabet validation.
	seq.ValidateSeq = false
}

// ReadNames streams up to n read names from a FASTQ file (gzip and "-" for
// stdin are handled transparently). The returned name is the full header
// line, i.e. the read ID plus any comment after the first space. n == -1
// reads the whole file. A failed read restarts the file, up to three
// attempts in total.
func ReadNames(path string, n int) ([]string, error) {
	var lastErr error
	for try := 0; try < readTries; try++ {
		names, err := readNamesOnce(path, n)
		if err == nil {
			return names, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("reading %s after %d attempts: %w", path, readTries, lastErr)
}

func readNamesOnce(path string, n int) ([]string, error) {
	reader, err := fastx.NewReader(seq.DNAredundant, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var names []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, string(record.Name))
		if n != -1 && len(names) >= n {
			break
		}
	}
	return names, nil
}
