// core/seqtech/illumina.go
package seqtech

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Casava 1.8+ layout: instrument:run:flowcell:lane:tile:x:y pair:filtered:control:index
var illuminaPattern = regexp.MustCompile(`^[\w-]+:\d+:[\w-]+:\d+:\d+:\d+:\d+\s[12]:[YN]:\d+:(\d+|[ATCGN+]+)$`)

type illuminaGrammar struct {
	log *slog.Logger
}

func (g *illuminaGrammar) Accepts(readName string) bool {
	return illuminaPattern.MatchString(readName)
}

func (g *illuminaGrammar) Extract(readName string) (Fields, error) {
	if !g.Accepts(readName) {
		g.log.Warn("read name does not match convention", "tech", Illumina, "read", readName)
		return Fields{}, nil
	}

	parts := strings.Split(readName, ":")
	run, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("illumina run number %q: %w", parts[1], err)
	}
	lane, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("illumina flow cell lane %q: %w", parts[3], err)
	}
	return Fields{
		"instrument_id":  parts[0],
		"run_number":     run,
		"flow_cell_id":   parts[2],
		"flow_cell_lane": lane,
	}, nil
}

func (g *illuminaGrammar) FieldNames() []string {
	return []string{"instrument_id", "run_number", "flow_cell_id", "flow_cell_lane"}
}
