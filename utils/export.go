package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const utf8BOM = "\ufeff"

// ExportHeader is the first line of the service request export
var ExportHeader = []string{
	"ID", "Customer Name", "Phone", "Service", "Status",
	"Price (SAR)", "Scheduled Date", "Location", "Notes",
}

// ExportRow is one service request as it appears in the export
type ExportRow struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Service       string
	Status        string
	Price         float64
	ScheduledDate time.Time
	Location      string
	Notes         string
}

// BuildRequestsCSV renders rows as a spreadsheet-friendly CSV document: a BOM,
// the header, then one line per row with no trailing newline. Only the notes
// column is quoted.
func BuildRequestsCSV(rows []ExportRow) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, strings.Join([]string{
			r.ID,
			r.CustomerName,
			r.CustomerPhone,
			r.Service,
			r.Status,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			FormatUSDate(r.ScheduledDate),
			dashIfEmpty(r.Location),
			quoteNotes(r.Notes),
		}, ","))
	}
	return utf8BOM + strings.Join(ExportHeader, ",") + "\n" + strings.Join(lines, "\n")
}

// FormatUSDate formats t as M/D/YYYY
func FormatUSDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func quoteNotes(notes string) string {
	if notes == "" {
		return "-"
	}
	return `"` + strings.ReplaceAll(notes, `"`, `""`) + `"`
}
