// core/extract/driver.go
package extract

import (
	"log/slog"

	"seqsleuth-core/seqtech"
)

// All applies one grammar to every read name in order and returns one Fields
// map per input, empty maps included for rejected or failing reads. A
// per-read extraction error is logged and degraded to an empty map; the loop
// never stops early, so a single garbled read cannot sink the file.
func All(g seqtech.Grammar, readNames []string, log *slog.Logger) []seqtech.Fields {
	if log == nil {
		log = slog.Default()
	}
	out := make([]seqtech.Fields, len(readNames))
	for i, name := range readNames {
		fields, err := g.Extract(name)
		if err != nil {
			log.Warn("read metadata extraction failed", "read", name, "err", err)
			fields = nil
		}
		if fields == nil {
			fields = seqtech.Fields{}
		}
		out[i] = fields
	}
	return out
}
