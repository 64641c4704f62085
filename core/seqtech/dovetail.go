// core/seqtech/dovetail.go
package seqtech

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Dovetail read names are two space-separated groups, the first holding at
// least seven colon-delimited library/instrument fields.
var dovetailPattern = regexp.MustCompile(`^(\S+:\S+:\S+:\S+:\S+:\S+:\S+)\s(\d:\S:\d:\S+)$`)

type dovetailGrammar struct {
	log *slog.Logger
}

func (g *dovetailGrammar) Accepts(readName string) bool {
	return dovetailPattern.MatchString(readName)
}

func (g *dovetailGrammar) Extract(readName string) (Fields, error) {
	if !g.Accepts(readName) {
		g.log.Warn("read name does not match convention", "tech", Dovetail, "read", readName)
		return Fields{}, nil
	}

	library := strings.Split(strings.Fields(readName)[0], ":")
	if len(library) < 5 {
		return nil, fmt.Errorf("dovetail read name %q: want >=5 library fields", readName)
	}
	// Fields 6+ are per-read coordinates, unique per read.
	out := make(Fields, 5)
	for i, field := range library[:5] {
		out[fmt.Sprintf("Library_Field_%d", i+1)] = field
	}
	return out, nil
}

func (g *dovetailGrammar) FieldNames() []string {
	return []string{"Library_Field_1", "Library_Field_2", "Library_Field_3", "Library_Field_4", "Library_Field_5"}
}
