// internal/keywords/extractor.go
package keywords

import (
	"regexp"
	"strings"
)

type hit struct {
	category string
	keyword  string
}

// datePatterns are tried in order against each path segment.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{8}`),             // YYYYMMDD
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), // YYYY-MM-DD
	regexp.MustCompile(`\d{6}`),             // YYMMDD run folders
	regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), // MM-DD-YYYY
}

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// Extractor matches path/filename tokens against a keyword table. Tokens are
// the alphanumeric runs of each path segment, lower-cased; segments are
// scanned from the end of the path so the last occurrence in the path wins
// per category.
type Extractor struct {
	byAlias map[string]hit
}

// NewExtractor flattens a Table into an alias lookup.
func NewExtractor(table Table) *Extractor {
	byAlias := make(map[string]hit)
	for category, kws := range table {
		for keyword, aliases := range kws {
			for _, alias := range aliases {
				byAlias[alias] = hit{category: category, keyword: keyword}
			}
		}
	}
	return &Extractor{byAlias: byAlias}
}

// Extract scans a filename or path for keyword and date tokens. The result
// always carries the filename itself under "filename".
func (e *Extractor) Extract(filename string) map[string]any {
	meta := map[string]any{}

	segments := strings.Split(filename, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		for _, tok := range tokenSplit.Split(strings.ToLower(segments[i]), -1) {
			h, ok := e.byAlias[tok]
			if !ok {
				continue
			}
			if _, taken := meta[h.category]; !taken {
				meta[h.category] = h.keyword
			}
		}
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if _, ok := meta["date"]; ok {
			break
		}
		for _, pat := range datePatterns {
			if m := pat.FindString(segments[i]); m != "" {
				meta["date"] = m
				break
			}
		}
	}

	meta["filename"] = filename
	return meta
}
