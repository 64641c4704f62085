// internal/report/report.go
package report

import (
	"sort"

	"seqsleuth-core/extract"
	"seqsleuth-core/seqtech"
)

// Report is one output row: the per-file result of classification, read-name
// metadata extraction, and path-keyword matching.
type Report struct {
	Filename string               `json:"filename"`
	FileType string               `json:"file_type"`
	Tech     seqtech.Technology   `json:"predicted_tech"`
	Keywords map[string]any       `json:"keywords,omitempty"`
	Metadata extract.FileMetadata `json:"metadata"`
}

// Less defines a stable order for reports (for -sort).
func Less(a, b Report) bool {
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	return a.FileType < b.FileType
}

func Sort(rs []Report) {
	sort.Slice(rs, func(i, j int) bool { return Less(rs[i], rs[j]) })
}
