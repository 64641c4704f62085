// core/seqtech/grammar.go
package seqtech

// Fields holds the metadata decoded from a single read name. Values are
// strings or ints. An empty map means the read did not follow its
// technology's naming convention and contributes nothing downstream.
type Fields map[string]any

// Grammar is one technology's read-name convention: an acceptance test, a
// field extractor, and the set of keys the extractor may produce.
//
// A Grammar instance is scoped to a single file's sequential read stream and
// must not be shared across goroutines: the Oxford Nanopore grammar carries
// a running earliest-start-date that mutates on every accepted read.
type Grammar interface {
	// Accepts reports whether readName follows this technology's convention.
	Accepts(readName string) bool
	// Extract decodes fields from readName. A read that fails Accepts yields
	// an empty map and a nil error; an error is returned only for reads that
	// pass the convention check but cannot be decoded (e.g. a malformed
	// timestamp), and callers treat such reads as empty too.
	Extract(readName string) (Fields, error)
	// FieldNames lists the keys Extract may produce, in a stable order.
	FieldNames() []string
}
