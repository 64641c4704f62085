// core/seqtech/nanopore.go
package seqtech

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// Standard MinKNOW read names: a UUID followed by space-separated key=value
// pairs, runid being a 40-hex run hash. Some basecallers emit only the UUID
// plus free-form tokens; those are accepted by the loose pattern and
// reported as non-standard.
var (
	nanoporePattern      = regexp.MustCompile(`^[0-9a-f]{8}-([0-9a-f]{4}-){3}[0-9a-f]{12} runid=[0-9a-f]{40}.*$`)
	nanoporeLoosePattern = regexp.MustCompile(`^[0-9a-f]{8}-([0-9a-f]{4}-){3}[0-9a-f]{12}.*$`)
)

const nanoporeTimeLayout = "2006-01-02T15:04:05Z"

// nanoporeGrammar keeps the earliest start date observed so far in the
// file's read stream. Every accepted read reports the minimum as of that
// read, so the emitted values are read-order dependent even though the final
// aggregated minimum is not. Not safe for concurrent use; one instance per
// file.
type nanoporeGrammar struct {
	log         *slog.Logger
	earliest    time.Time
	hasEarliest bool
	fieldsSeen  []string
}

func (g *nanoporeGrammar) Accepts(readName string) bool {
	return nanoporePattern.MatchString(readName) || nanoporeLoosePattern.MatchString(readName)
}

func (g *nanoporeGrammar) Extract(readName string) (Fields, error) {
	if !g.Accepts(readName) {
		g.log.Warn("read name does not match convention", "tech", OxfordNanopore, "read", readName)
		return Fields{}, nil
	}

	if !nanoporePattern.MatchString(readName) {
		out := Fields{"read_name": readName, "note": "non-standard read name"}
		g.noteFields(out)
		return out, nil
	}

	out := Fields{}
	var startTime string
	var hasStartTime bool
	for _, pair := range strings.Fields(readName)[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("nanopore read name token %q: want key=value", pair)
		}
		switch key {
		case "read", "ch":
			// per-read channel/ordinal, useless at file scope
		case "start_time":
			startTime, hasStartTime = value, true
		default:
			out[key] = value
		}
	}
	if !hasStartTime {
		return nil, fmt.Errorf("nanopore read name %q: missing start_time", readName)
	}
	ts, err := time.Parse(nanoporeTimeLayout, startTime)
	if err != nil {
		return nil, fmt.Errorf("nanopore start_time %q: %w", startTime, err)
	}

	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	if !g.hasEarliest || day.Before(g.earliest) {
		g.earliest = day
		g.hasEarliest = true
	}
	out["earliest_start_date"] = g.earliest.Format("2006-01-02")
	g.noteFields(out)
	return out, nil
}

// FieldNames reports the keys seen so far: nanopore key=value pairs are
// open-ended, so the set grows as reads are extracted.
func (g *nanoporeGrammar) FieldNames() []string {
	return g.fieldsSeen
}

func (g *nanoporeGrammar) noteFields(f Fields) {
	for k := range f {
		seen := false
		for _, s := range g.fieldsSeen {
			if s == k {
				seen = true
				break
			}
		}
		if !seen {
			g.fieldsSeen = append(g.fieldsSeen, k)
		}
	}
}
