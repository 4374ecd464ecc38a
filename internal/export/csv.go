package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dm/actdash/internal/client"
)

// Header is the column row written before the trace rows.
var Header = []string{"Time Stamp", "Method", "Time Taken(ms)", "Status", "URI"}

// WriteCSV writes traces as a spreadsheet-compatible CSV table, one row per
// trace in the given order.
func WriteCSV(w io.Writer, traces []client.HTTPTrace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, tr := range traces {
		if err := cw.Write(Row(tr)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Row returns the table cells for one trace.
func Row(tr client.HTTPTrace) []string {
	status := ""
	if code, ok := tr.Status(); ok {
		status = strconv.Itoa(code)
	}
	taken := ""
	if tr.TimeTaken >= 0 {
		taken = strconv.FormatInt(tr.TimeTaken, 10)
	}
	return []string{tr.Timestamp, tr.Request.Method, taken, status, tr.Request.URI}
}

// FileName returns the export file name for a table exported at now.
func FileName(now time.Time) string {
	return "httptrace-" + now.Format("20060102-150405.000") + ".csv"
}

// ExportFile writes traces to a new CSV file in dir and returns its path.
func ExportFile(dir string, traces []client.HTTPTrace, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, traces); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}
