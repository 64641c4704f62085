// core/seqtech/factory.go
package seqtech

import "log/slog"

// grammarConstructors maps each technology with a dedicated parser to its
// grammar constructor. Everything else resolves to the sentinel grammar.
var grammarConstructors = map[Technology]func(*slog.Logger) Grammar{
	Illumina:       func(l *slog.Logger) Grammar { return &illuminaGrammar{log: l} },
	PacBio:         func(l *slog.Logger) Grammar { return &pacbioGrammar{log: l} },
	OxfordNanopore: func(l *slog.Logger) Grammar { return &nanoporeGrammar{log: l} },
	TenXGenomics:   func(l *slog.Logger) Grammar { return &tenxGrammar{log: l} },
	Dovetail:       func(l *slog.Logger) Grammar { return &dovetailGrammar{log: l} },
}

// New returns a fresh grammar instance for one file's read stream. Unmapped
// technologies (BGI, CompleteGenomics, StrandSeq, Moleculo, IonTorrent,
// Assembly, Other, Unknown, ...) fall back to the sentinel grammar rather
// than failing; construction never propagates an error.
func New(t Technology, log *slog.Logger) Grammar {
	if log == nil {
		log = slog.Default()
	}
	if ctor, ok := grammarConstructors[t]; ok {
		return ctor(log)
	}
	return &sentinelGrammar{log: log}
}
