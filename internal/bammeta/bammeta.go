// internal/bammeta/bammeta.go
package bammeta

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// Extract opens a BAM file and reports header-derived metadata plus the name
// of the first alignment record.
func Extract(path string) (map[string]any, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bam %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	br, err := bam.NewReader(fh, 1)
	if err != nil {
		return nil, fmt.Errorf("bam %s: %w", path, err)
	}
	defer func() { _ = br.Close() }()

	meta, err := FromHeader(br.Header())
	if err != nil {
		return nil, fmt.Errorf("bam %s: %w", path, err)
	}

	rec, err := br.Read()
	switch {
	case err == nil:
		meta["first_read_name"] = rec.Name
	case err == io.EOF:
		// header-only file
	default:
		meta["read_error"] = err.Error()
	}
	return meta, nil
}

// FromHeader flattens the provenance-bearing parts of a SAM header.
func FromHeader(h *sam.Header) (map[string]any, error) {
	text, err := h.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("marshal header: %w", err)
	}
	meta := parseHeaderText(string(text))
	meta["n_references"] = len(h.Refs())
	return meta, nil
}

// parseHeaderText extracts @HD/@RG/@PG/@CO content from SAM header text.
// Read-group platform/center/sample tags are lifted to top-level keys
// (widened to lists when read groups disagree) since they are the fields the
// catalogue cares about.
func parseHeaderText(text string) map[string]any {
	meta := map[string]any{}
	var readGroups, programs []map[string]string
	var comments []string

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "@HD":
			for _, tag := range fields[1:] {
				switch k, v, _ := strings.Cut(tag, ":"); k {
				case "VN":
					meta["format_version"] = v
				case "SO":
					meta["sort_order"] = v
				}
			}
		case "@RG":
			readGroups = append(readGroups, tagMap(fields[1:]))
		case "@PG":
			programs = append(programs, tagMap(fields[1:]))
		case "@CO":
			comments = append(comments, strings.Join(fields[1:], "\t"))
		}
	}

	if len(readGroups) > 0 {
		meta["read_groups"] = readGroups
		liftTag(meta, "platform", readGroups, "PL")
		liftTag(meta, "sequencing_center", readGroups, "CN")
		liftTag(meta, "sample", readGroups, "SM")
		liftTag(meta, "library", readGroups, "LB")
	}
	if len(programs) > 0 {
		meta["programs"] = programs
	}
	if len(comments) > 0 {
		meta["comments"] = comments
	}
	return meta
}

func tagMap(tags []string) map[string]string {
	m := make(map[string]string, len(tags))
	for _, tag := range tags {
		if k, v, ok := strings.Cut(tag, ":"); ok {
			m[k] = v
		}
	}
	return m
}

// liftTag promotes one read-group tag to a top-level scalar, or to a list of
// the distinct values when read groups disagree.
func liftTag(meta map[string]any, key string, groups []map[string]string, tag string) {
	var distinct []string
	seen := map[string]bool{}
	for _, g := range groups {
		v, ok := g[tag]
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		distinct = append(distinct, v)
	}
	switch len(distinct) {
	case 0:
	case 1:
		meta[key] = distinct[0]
	default:
		meta[key] = distinct
	}
}
