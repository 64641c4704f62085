// core/extract/aggregate.go
package extract

import "seqsleuth-core/seqtech"

// FileMetadata is the per-file reduction of per-read fields: a scalar where
// every read agreed on a key, otherwise a list of the distinct values seen.
// List order carries no meaning (first-seen order in practice).
type FileMetadata map[string]any

// Aggregate folds per-read field maps into one FileMetadata. Phase one
// collects the distinct values observed per key; phase two collapses
// singleton sets to scalars. Empty per-read maps contribute nothing, so an
// all-empty (or empty) input reduces to an empty FileMetadata.
func Aggregate(metas []seqtech.Fields) FileMetadata {
	var keys []string
	values := make(map[string][]any)
	distinct := make(map[string]map[any]struct{})

	for _, m := range metas {
		for k, v := range m {
			set, ok := distinct[k]
			if !ok {
				set = make(map[any]struct{})
				distinct[k] = set
				keys = append(keys, k)
			}
			if _, dup := set[v]; dup {
				continue
			}
			set[v] = struct{}{}
			values[k] = append(values[k], v)
		}
	}

	out := make(FileMetadata, len(keys))
	for _, k := range keys {
		if vs := values[k]; len(vs) == 1 {
			out[k] = vs[0]
		} else {
			out[k] = vs
		}
	}
	return out
}
