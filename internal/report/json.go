// internal/report/json.go
package report

import (
	"encoding/json"
	"io"
)

// WriteJSON writes a single pretty-indented JSON array of reports.
func WriteJSON(w io.Writer, list []Report) error {
	if list == nil {
		list = []Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// StreamJSONL encodes each report as one JSON line as it arrives.
func StreamJSONL(w io.Writer, in <-chan Report) error {
	enc := json.NewEncoder(w)
	for r := range in {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
