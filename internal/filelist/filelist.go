// internal/filelist/filelist.go
package filelist

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shenwei356/xopen"
)

// File types understood by the pipeline.
const (
	TypeFASTQ = "fastq"
	TypeBAM   = "bam"
	TypeVCF   = "vcf"
)

// Entry is one file to process: its declared type, its display name (used
// for keyword matching), and the path or URL to read it from.
type Entry struct {
	FileType string
	Filename string
	Path     string
}

// FromArgs wraps positional FASTQ paths as entries.
func FromArgs(paths []string) []Entry {
	out := make([]Entry, 0, len(paths))
	for _, p := range paths {
		out = append(out, Entry{FileType: TypeFASTQ, Filename: filepath.Base(p), Path: p})
	}
	return out
}

// Load reads a CSV manifest with a file_type,filename,filepath header
// (gzip and "-" for stdin are handled transparently).
func Load(path string) ([]Entry, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("file list %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("file list %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file list %s: empty", path)
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, want := range []string{"file_type", "filename", "filepath"} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("file list %s: missing column %q", path, want)
		}
	}

	var list []Entry
	for ln, row := range rows[1:] {
		e := Entry{
			FileType: strings.ToLower(strings.TrimSpace(row[cols["file_type"]])),
			Filename: strings.TrimSpace(row[cols["filename"]]),
			Path:     strings.TrimSpace(row[cols["filepath"]]),
		}
		switch e.FileType {
		case TypeFASTQ, TypeBAM, TypeVCF:
		default:
			return nil, fmt.Errorf("file list %s row %d: unknown file_type %q", path, ln+2, e.FileType)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("file list %s row %d: empty filepath", path, ln+2)
		}
		if e.Filename == "" {
			e.Filename = filepath.Base(e.Path)
		}
		list = append(list, e)
	}
	return list, nil
}
