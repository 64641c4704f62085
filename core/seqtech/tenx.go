// core/seqtech/tenx.go
package seqtech

import (
	"log/slog"
	"regexp"
	"strings"
)

// Linked-read names carry sample:library:flowcell:set:... as the leading
// colon-delimited fields.
var tenxPattern = regexp.MustCompile(`^\S+:\S+:\S+:\S+:\S+:.*$`)

type tenxGrammar struct {
	log *slog.Logger
}

func (g *tenxGrammar) Accepts(readName string) bool {
	return tenxPattern.MatchString(readName)
}

func (g *tenxGrammar) Extract(readName string) (Fields, error) {
	if !g.Accepts(readName) {
		g.log.Warn("read name does not match convention", "tech", TenXGenomics, "read", readName)
		return Fields{}, nil
	}

	parts := strings.Split(readName, ":")
	return Fields{
		"sample":  parts[0],
		"library": parts[1],
		"set":     parts[3],
	}, nil
}

func (g *tenxGrammar) FieldNames() []string {
	return []string{"sample", "library", "set"}
}
