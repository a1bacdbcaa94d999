// Package report turns resolutions into the output table
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Nehilsa2/company_resolver/resolve"
)

// Header is the column order of every report
var Header = []string{"S Number", "Name", "Website", "LinkedIn", "Error"}

// Row is one line of the report. Absent values are empty strings.
type Row struct {
	Number   int
	Name     string
	Website  string
	LinkedIn string
	Error    string
}

// Assemble builds one row per resolution, numbered from 1 in input order
func Assemble(resolutions []resolve.Resolution) []Row {
	rows := make([]Row, 0, len(resolutions))
	for i, res := range resolutions {
		row := Row{
			Number: i + 1,
			Name:   res.Name,
		}
		switch o := res.Outcome.(type) {
		case resolve.Resolved:
			row.Website = o.Website
			row.LinkedIn = o.LinkedIn
		case resolve.Failed:
			row.Error = o.Message
		}
		rows = append(rows, row)
	}
	return rows
}

// Record returns the row's fields in Header order
func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.Number),
		r.Name,
		r.Website,
		r.LinkedIn,
		r.Error,
	}
}

// WriteCSV writes the header followed by every row
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Number, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
