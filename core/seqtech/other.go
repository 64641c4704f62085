// core/seqtech/other.go
package seqtech

import "log/slog"

// SentinelTech is the marker reported for technologies without a dedicated
// read-name parser.
const SentinelTech = "unimplemented parser"

// sentinelGrammar serves Other, Unknown, and every technology without a
// dedicated grammar. It accepts all read names and echoes them back under a
// fixed sentinel shape so that unrecognized files still produce a row.
type sentinelGrammar struct {
	log *slog.Logger
}

func (g *sentinelGrammar) Accepts(string) bool { return true }

func (g *sentinelGrammar) Extract(readName string) (Fields, error) {
	return Fields{"tech": SentinelTech, "read_names": readName}, nil
}

func (g *sentinelGrammar) FieldNames() []string {
	return []string{"tech", "read_names"}
}
