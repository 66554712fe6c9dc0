package domain

import (
	"strings"
	"time"
)

// Canonical column names used after alias resolution, plus the optional
// columns the transformer reads when present.
const (
	ColumnTime          = "time"
	ColumnTweet         = "Tweet"
	ColumnID            = "id"
	ColumnMediaViews    = "media views"
	ColumnURLClicks     = "url clicks"
	ColumnHashtagClicks = "hashtag clicks"
)

// RawRecord maps a column name to the raw cell text of one spreadsheet row.
// A missing key and a blank cell both mean the value is absent.
type RawRecord map[string]string

// Cell returns the trimmed text of the named column. ok is false when the
// cell is absent or blank.
func (r RawRecord) Cell(col string) (string, bool) {
	v, ok := r[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// RawTable is the ordered set of rows produced by the workbook loader.
// Row order matches the source file and is preserved through transformation.
type RawTable struct {
	Columns []string    `json:"columns"`
	Rows    []RawRecord `json:"rows"`
}

// Category labels a post by its dominant engagement signal.
type Category string

const (
	CategoryMedia    Category = "Media"
	CategoryLinks    Category = "Links"
	CategoryHashtags Category = "Hashtags"
	CategoryOther    Category = "Other"
)

// EnrichedRecord is one post after normalization: the original columns
// (under their canonical names) plus the derived analytic fields.
type EnrichedRecord struct {
	// Values holds every original column after the canonical rename.
	Values RawRecord `json:"values"`

	TimeUTC    time.Time `json:"time_utc" validate:"required"`
	TimeIST    time.Time `json:"time_ist" validate:"required"`
	DateIST    string    `json:"date_ist"`
	HourIST    int       `json:"hour_ist" validate:"min=0,max=23"`
	DayOfWeek  string    `json:"day_of_week"`
	DayOfMonth int       `json:"day_of_month" validate:"min=1,max=31"`
	WordCount  int       `json:"tweet_word_count" validate:"min=0"`
	CharCount  int       `json:"tweet_char_count" validate:"min=0"`
	Category   Category  `json:"tweet_category"`

	// UserProfileID is the verbatim id cell; empty when the source row
	// had no id column.
	UserProfileID string `json:"user_profile_id"`
}

// EnrichedTable is the transformer output: original columns (post-rename)
// plus the derived fields, one EnrichedRecord per surviving source row.
type EnrichedTable struct {
	Columns []string         `json:"columns"`
	Rows    []EnrichedRecord `json:"rows"`
}

// DerivedColumns returns the derived column headers in output order,
// appended after the original columns when the table is serialized.
func DerivedColumns() []string {
	return []string{
		"time_utc",
		"time_ist",
		"date_ist",
		"hour_ist",
		"day_of_week",
		"day_of_month",
		"TweetWordCount",
		"TweetCharCount",
		"TweetCategory",
		"user_profile_id",
	}
}
