// internal/report/csv.go
package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// CSVHeader is the canonical header row for CSV output. Map-valued cells
// (keywords, metadata) are JSON-encoded in place.
var CSVHeader = []string{"filename", "file_type", "predicted_tech", "keywords", "metadata"}

// WriteCSV writes one row per report.
func WriteCSV(w io.Writer, list []Report, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		keywords, err := marshalCell(r.Keywords)
		if err != nil {
			return err
		}
		metadata, err := marshalCell(r.Metadata)
		if err != nil {
			return err
		}
		row := []string{r.Filename, r.FileType, string(r.Tech), keywords, metadata}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshalCell(m any) (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
