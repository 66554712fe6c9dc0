package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "tweetmetrics/internal/errors"
	"tweetmetrics/pkg/contracts/domain"
)

// Column aliases accepted for the required fields, in priority order.
var (
	timeAliases  = []string{"time", "Time"}
	tweetAliases = []string{"Tweet", "TweetText"}
)

// istZone is Indian Standard Time, a fixed UTC+5:30 offset with no DST.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// postTimeLayouts match "YYYY-MM-DD HH:MM" followed by a UTC-offset token.
// The offset appears both space-separated and attached in the wild.
var postTimeLayouts = []string{
	"2006-01-02 15:04 -0700",
	"2006-01-02 15:04-0700",
}

// Transform normalizes a raw post table and appends the derived analytic
// columns. It renames the required time/Tweet columns to their canonical
// names, drops rows missing either value, parses timestamps in a second
// pass (dropping rows that fail with a single aggregate warning), and
// derives the per-row metrics. Row order is preserved throughout.
//
// The only fatal condition is a table whose schema matches neither alias
// for a required column.
func Transform(raw *domain.RawTable) (*domain.EnrichedTable, error) {
	// Step 1: resolve aliases against the table schema, once.
	timeCol, timeOK := resolveAlias(raw.Columns, timeAliases)
	tweetCol, tweetOK := resolveAlias(raw.Columns, tweetAliases)
	if !timeOK || !tweetOK {
		var missing []string
		if !timeOK {
			missing = append(missing, domain.ColumnTime)
		}
		if !tweetOK {
			missing = append(missing, domain.ColumnTweet)
		}
		return nil, apperrors.NewMissingColumnError(missing, raw.Columns)
	}

	// Step 2: canonical rename across the schema and every row.
	columns := renameColumns(raw.Columns, timeCol, tweetCol)
	rows := make([]domain.RawRecord, 0, len(raw.Rows))
	for _, rec := range raw.Rows {
		rows = append(rows, renameRecord(rec, timeCol, tweetCol))
	}

	// Step 3: drop rows missing either required value.
	kept := rows[:0]
	for _, rec := range rows {
		_, hasTime := rec.Cell(domain.ColumnTime)
		_, hasTweet := rec.Cell(domain.ColumnTweet)
		if hasTime && hasTweet {
			kept = append(kept, rec)
		}
	}
	if dropped := len(raw.Rows) - len(kept); dropped > 0 {
		slog.Info("Dropped rows with missing required fields", slog.Int("dropped", dropped))
	}

	// Step 4: parse every timestamp before dropping any row for it, so the
	// warning reflects the whole table rather than the first failure.
	parsed := make([]time.Time, len(kept))
	failures := 0
	for i, rec := range kept {
		cell, _ := rec.Cell(domain.ColumnTime)
		t, ok := parsePostTime(cell)
		if !ok {
			failures++
			continue
		}
		parsed[i] = t
	}
	if failures > 0 {
		slog.Warn("Some time values could not be converted, dropping those rows",
			slog.Int("unparseable", failures))
	}

	table := &domain.EnrichedTable{Columns: columns}
	for i, rec := range kept {
		if parsed[i].IsZero() {
			continue
		}
		table.Rows = append(table.Rows, enrich(rec, parsed[i]))
	}

	slog.Info("Transform complete",
		slog.Int("rows_in", len(raw.Rows)),
		slog.Int("rows_out", len(table.Rows)))

	return table, nil
}

// enrich derives the analytic fields for one row (steps 5-9).
func enrich(rec domain.RawRecord, utc time.Time) domain.EnrichedRecord {
	ist := toIST(utc)
	tweet, _ := rec.Cell(domain.ColumnTweet)

	return domain.EnrichedRecord{
		Values:        rec,
		TimeUTC:       utc,
		TimeIST:       ist,
		DateIST:       ist.Format("2006-01-02"),
		HourIST:       ist.Hour(),
		DayOfWeek:     ist.Weekday().String(),
		DayOfMonth:    ist.Day(),
		WordCount:     wordCount(tweet),
		CharCount:     charCount(tweet),
		Category:      categorize(rec),
		UserProfileID: rec[domain.ColumnID],
	}
}

// resolveAlias returns the first column name present in columns, trying the
// aliases in priority order.
func resolveAlias(columns []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for _, col := range columns {
			if col == alias {
				return alias, true
			}
		}
	}
	return "", false
}

// renameColumns rewrites the schema with the canonical required names in
// place, leaving every other column untouched.
func renameColumns(columns []string, timeCol, tweetCol string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case timeCol:
			out[i] = domain.ColumnTime
		case tweetCol:
			out[i] = domain.ColumnTweet
		default:
			out[i] = col
		}
	}
	return out
}

// renameRecord moves the matched alias cells to their canonical keys.
func renameRecord(rec domain.RawRecord, timeCol, tweetCol string) domain.RawRecord {
	out := domain.RawRecord{}
	for col, v := range rec {
		switch col {
		case timeCol:
			out[domain.ColumnTime] = v
		case tweetCol:
			out[domain.ColumnTweet] = v
		default:
			out[col] = v
		}
	}
	return out
}

// parsePostTime parses the fixed post timestamp pattern, normalized to UTC.
// A value that matches no accepted layout yields ok=false rather than an
// error; the caller drops such rows after the full parse pass.
func parsePostTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range postTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// toIST shifts a UTC timestamp by the fixed +5:30 offset. Conversion into
// the fixed zone is the same wall-clock addition and rolls day, month and
// year boundaries correctly.
func toIST(t time.Time) time.Time {
	return t.In(istZone)
}

// wordCount counts whitespace-delimited non-empty tokens.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// charCount counts characters (runes, not bytes) in the text.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// categorize labels a post by its first positive engagement signal:
// media views, then url clicks, then hashtag clicks. Absent or
// non-numeric cells count as zero.
func categorize(rec domain.RawRecord) domain.Category {
	switch {
	case numericCell(rec, domain.ColumnMediaViews) > 0:
		return domain.CategoryMedia
	case numericCell(rec, domain.ColumnURLClicks) > 0:
		return domain.CategoryLinks
	case numericCell(rec, domain.ColumnHashtagClicks) > 0:
		return domain.CategoryHashtags
	default:
		return domain.CategoryOther
	}
}

// numericCell parses the named cell as a float, tolerating thousands
// separators. Missing or malformed cells yield 0.
func numericCell(rec domain.RawRecord, col string) float64 {
	cell, ok := rec.Cell(col)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
