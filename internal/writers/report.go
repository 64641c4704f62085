// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"seqsleuth/internal/cli"
	"seqsleuth/internal/report"
)

// StartReportWriter spins up a writer goroutine consuming report rows.
// CSV and JSON buffer (both need the full batch for sorting / a single
// array); JSONL streams unless sorting was requested.
func StartReportWriter(out io.Writer, format string, sortRows bool, header bool, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case cli.FormatCSV:
			buf := collect(in, sortRows)
			err = report.WriteCSV(out, buf, header)

		case cli.FormatJSON:
			buf := collect(in, sortRows)
			err = report.WriteJSON(out, buf)

		case cli.FormatJSONL:
			if sortRows {
				buf := collect(in, true)
				ch := make(chan report.Report, len(buf))
				for _, r := range buf {
					ch <- r
				}
				close(ch)
				err = report.StreamJSONL(out, ch)
			} else {
				err = report.StreamJSONL(out, in)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func collect(in <-chan report.Report, sortRows bool) []report.Report {
	var buf []report.Report
	for r := range in {
		buf = append(buf, r)
	}
	if sortRows {
		report.Sort(buf)
	}
	return buf
}
