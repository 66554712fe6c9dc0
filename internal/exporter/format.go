package exporter

import (
	"strconv"
	"time"

	"tweetmetrics/pkg/contracts/domain"
)

// Timestamp rendering layouts. time_utc keeps its UTC offset; time_ist and
// date_ist are rendered as local IST values without one.
const (
	layoutUTC = "2006-01-02T15:04:05-07:00"
	layoutIST = "2006-01-02T15:04:05"
)

// Headers returns the CSV header row for an enriched table: the original
// columns in source order followed by the derived columns.
func Headers(t *domain.EnrichedTable) []string {
	headers := make([]string, 0, len(t.Columns)+len(domain.DerivedColumns()))
	headers = append(headers, t.Columns...)
	headers = append(headers, domain.DerivedColumns()...)
	return headers
}

// Records renders every row of an enriched table in Headers order.
func Records(t *domain.EnrichedTable) [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, recordToRow(t.Columns, row))
	}
	return records
}

// recordToRow renders one record: pass-through original cells first, then
// the derived values in domain.DerivedColumns order.
func recordToRow(columns []string, rec domain.EnrichedRecord) []string {
	row := make([]string, 0, len(columns)+10)
	for _, col := range columns {
		row = append(row, rec.Values[col])
	}
	row = append(row,
		formatUTC(rec.TimeUTC),
		formatIST(rec.TimeIST),
		rec.DateIST,
		formatInt(rec.HourIST),
		rec.DayOfWeek,
		formatInt(rec.DayOfMonth),
		formatInt(rec.WordCount),
		formatInt(rec.CharCount),
		string(rec.Category),
		rec.UserProfileID,
	)
	return row
}

// formatUTC formats a UTC-normalized timestamp with its offset
func formatUTC(t time.Time) string {
	return t.Format(layoutUTC)
}

// formatIST formats an IST timestamp without an offset
func formatIST(t time.Time) string {
	return t.Format(layoutIST)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
