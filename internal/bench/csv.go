package bench

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var csvHeader = []string{"benchmark", "producers", "consumers", "items", "duration_ms"}

// CSVReporter appends benchmark results to a CSV file, one row per
// result. Not safe for concurrent use; the runner records serially.
type CSVReporter struct {
	f *os.File
	w *csv.Writer
}

// NewCSVReporter creates (or truncates) the file at path and writes
// the header row.
func NewCSVReporter(path string) (*CSVReporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating result file %q", path)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "writing csv header")
	}
	return &CSVReporter{f: f, w: w}, nil
}

// Record appends one result row.
func (r *CSVReporter) Record(res Result) error {
	row := []string{
		res.Name,
		strconv.Itoa(res.Producers),
		strconv.Itoa(res.Consumers),
		strconv.Itoa(res.Items),
		strconv.FormatFloat(res.Millis(), 'f', 3, 64),
	}
	return errors.Wrapf(r.w.Write(row), "recording result for %q", res.Name)
}

// Close flushes buffered rows and closes the file.
func (r *CSVReporter) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.f.Close()
		return errors.Wrap(err, "flushing results")
	}
	return errors.Wrap(r.f.Close(), "closing result file")
}
