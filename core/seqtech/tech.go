// core/seqtech/tech.go
package seqtech

import (
	"strings"
)

// Technology identifies the sequencing platform (or processing origin) that
// produced a file. It is assigned once per file and selects the read-name
// grammar used for metadata extraction.
type Technology string

const (
	Illumina         Technology = "Illumina"
	PacBio           Technology = "PacBio"
	OxfordNanopore   Technology = "OxfordNanopore"
	TenXGenomics     Technology = "10XGenomics"
	Dovetail         Technology = "Dovetail"
	BGI              Technology = "BGI"
	CompleteGenomics Technology = "CompleteGenomics"
	StrandSeq        Technology = "StrandSeq"
	Moleculo         Technology = "Moleculo"
	IonTorrent       Technology = "IonTorrent"
	Assembly         Technology = "Assembly"
	Other            Technology = "Other"
	Unknown          Technology = "Unknown"
)

// identifierTable maps each technology to the filename substrings that imply
// it. Order matters: FromFilename evaluates entries top to bottom and the
// first technology with a matching substring wins, so broad identifiers like
// "ill" or "pb" only shadow entries below them. Keep this order stable.
var identifierTable = []struct {
	tech Technology
	subs []string
}{
	{Illumina, []string{"illumina", "ilum", "nextseq", "hiseq", "miseq", "novaseq", "ill"}},
	{PacBio, []string{"pacbio", "pb", "sequel", "smrt"}},
	{OxfordNanopore, []string{"nanopore", "ont", "minion", "promethion"}},
	{BGI, []string{"bgi"}},
	{CompleteGenomics, []string{"completegenomics"}},
	{Dovetail, []string{"dovetail"}},
	{StrandSeq, []string{"strandseq"}},
	{TenXGenomics, []string{"10xgenomics"}},
	{Moleculo, []string{"moleculo"}},
	{IonTorrent, []string{"ion_torrent", "iontorrent", "proton"}},
	{Assembly, []string{"assembly", "assem"}},
}

// FromFilename predicts the sequencing technology from substring identifiers
// in the (case-insensitive) filename or path. No match yields Unknown; the
// classifier never fails.
func FromFilename(filename string) (tech Technology) {
	tech = Unknown
	defer func() {
		if recover() != nil {
			tech = Unknown
		}
	}()

	lower := strings.ToLower(filename)
	for _, entry := range identifierTable {
		for _, sub := range entry.subs {
			if strings.Contains(lower, sub) {
				return entry.tech
			}
		}
	}
	return Unknown
}

// FromReadNames predicts the technology from read-name token shape. It is a
// secondary heuristic: filename classification is authoritative and callers
// consult this only as an explicit fallback when the filename gave Unknown.
func FromReadNames(names []string) Technology {
	for _, name := range names {
		if parts := strings.Split(name, ":"); len(parts) > 1 && isDigits(parts[1]) {
			return Illumina
		}
		if strings.HasPrefix(name, "m") || strings.HasPrefix(name, "c") {
			return PacBio
		}
		if strings.HasPrefix(name, "read") {
			return OxfordNanopore
		}
	}
	return Unknown
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
