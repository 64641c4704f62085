// internal/vcfmeta/vcfmeta.go
package vcfmeta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
)

// Structured header records carried per-contig/per-field; noise at file
// scope, so they are skipped.
var structuredKeys = map[string]bool{
	"contig": true,
	"INFO":   true,
	"FORMAT": true,
	"FILTER": true,
	"ALT":    true,
}

// Extract reads the meta-information header of a VCF file (plain or
// bgzip/gzip) and returns its unstructured key=value lines plus the sample
// IDs from the #CHROM column line. Scanning stops at the first data record.
func Extract(path string) (map[string]any, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("vcf %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	meta, err := fromReader(fh)
	if err != nil {
		return nil, fmt.Errorf("vcf %s: %w", path, err)
	}
	return meta, nil
}

func fromReader(r io.Reader) (map[string]any, error) {
	meta := map[string]any{"samples": []string{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "##"):
			key, value, ok := strings.Cut(line[2:], "=")
			if !ok || structuredKeys[key] {
				continue
			}
			addHeaderValue(meta, key, value)
		case strings.HasPrefix(line, "#CHROM"):
			fields := strings.Split(line, "\t")
			if len(fields) > 9 {
				meta["samples"] = fields[9:]
			}
			return meta, nil
		default:
			// first data record; header is done
			return meta, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return meta, nil
}

// addHeaderValue stores a header value, widening to a list when a key
// repeats with distinct values (e.g. multiple ##source lines).
func addHeaderValue(meta map[string]any, key, value string) {
	prev, exists := meta[key]
	if !exists {
		meta[key] = value
		return
	}
	switch p := prev.(type) {
	case string:
		if p != value {
			meta[key] = []string{p, value}
		}
	case []string:
		for _, v := range p {
			if v == value {
				return
			}
		}
		meta[key] = append(p, value)
	}
}
