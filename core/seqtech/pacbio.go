// core/seqtech/pacbio.go
package seqtech

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// PacBio read names: movie/hole/region. CLR reads carry a start_end region,
// CCS reads the literal "ccs".
var (
	pacbioCLRPattern = regexp.MustCompile(`^m\d+_\d+_\d+_c\d+_s\d+_p\d+/\d+/\d+_\d+$`)
	pacbioCCSPattern = regexp.MustCompile(`^m\d+(_[A-Za-z0-9]+)*/\d+/ccs$`)
)

type pacbioGrammar struct {
	log *slog.Logger
}

func (g *pacbioGrammar) Accepts(readName string) bool {
	return pacbioCLRPattern.MatchString(readName) || pacbioCCSPattern.MatchString(readName)
}

func (g *pacbioGrammar) Extract(readName string) (Fields, error) {
	if !g.Accepts(readName) {
		g.log.Warn("read name does not match convention", "tech", PacBio, "read", readName)
		return Fields{}, nil
	}

	parts := strings.Split(readName, "/")
	if len(parts) < 3 {
		return nil, fmt.Errorf("pacbio read name %q: want movie/hole/region", readName)
	}
	readType := "CLR"
	if parts[2] == "ccs" {
		readType = "CCS"
	}
	return Fields{
		"movie_name": parts[0],
		"read_type":  readType,
	}, nil
}

func (g *pacbioGrammar) FieldNames() []string {
	return []string{"movie_name", "read_type"}
}
