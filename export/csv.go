package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ndehigampala97/sawmc/observe"
)

// csvHeader matches the columns the analysis scripts consume.
var csvHeader = []string{"step", "R", "Rg", "contacts"}

// CSVWriter emits observable records as CSV rows under a fixed header.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter returns a CSV observable writer over w. The header is
// written lazily with the first record so an empty run produces an empty
// file.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteRecord appends one row for rec, emitting the header first if
// needed. Floats use the shortest round-trip representation.
func (c *CSVWriter) WriteRecord(rec observe.Record) error {
	if !c.wroteHeader {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}

	return c.w.Write([]string{
		strconv.Itoa(rec.Step),
		strconv.FormatFloat(rec.R, 'g', -1, 64),
		strconv.FormatFloat(rec.Rg, 'g', -1, 64),
		strconv.Itoa(rec.Contacts),
	})
}

// Flush drains buffered rows to the underlying writer and reports any
// deferred write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()

	return c.w.Error()
}
