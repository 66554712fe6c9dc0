package main

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "tweetmetrics/internal/errors"
)

// writeFixture builds a small raw export workbook for end-to-end runs.
func writeFixture(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "Tweet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// readCSV parses an exported file, stripping the UTF-8 BOM.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRun_EndToEnd(t *testing.T) {
	src := writeFixture(t, "SocialMedia (1)", [][]interface{}{
		{"id", "time", "Tweet", "media views", "url clicks", "hashtag clicks"},
		{"1", "2024-06-01 10:00 +0000", "hi there", "0", "0", "0"},
		{"2", "2024-12-31 23:45 +0000", "year end post", "3", "0", "0"},
		{"3", "", "row without time", "0", "0", "0"},
		{"4", "not a timestamp", "bad time row", "0", "0", "0"},
	})
	out := filepath.Join(t.TempDir(), "cleaned.csv")

	require.NoError(t, run(slog.Default(), src, "SocialMedia (1)", out))

	records := readCSV(t, out)
	// Header + 2 surviving rows; rows 3 and 4 are dropped.
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, []string{
		"id", "time", "Tweet", "media views", "url clicks", "hashtag clicks",
		"time_utc", "time_ist", "date_ist", "hour_ist", "day_of_week",
		"day_of_month", "TweetWordCount", "TweetCharCount", "TweetCategory",
		"user_profile_id",
	}, header)

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %s not found", name)
		return -1
	}

	first := records[1]
	assert.Equal(t, "2024-06-01T10:00:00+00:00", first[col("time_utc")])
	assert.Equal(t, "2024-06-01T15:30:00", first[col("time_ist")])
	assert.Equal(t, "15", first[col("hour_ist")])
	assert.Equal(t, "Saturday", first[col("day_of_week")])
	assert.Equal(t, "2", first[col("TweetWordCount")])
	assert.Equal(t, "8", first[col("TweetCharCount")])
	assert.Equal(t, "Other", first[col("TweetCategory")])
	assert.Equal(t, "1", first[col("user_profile_id")])

	// Year rollover and category precedence on the second row.
	second := records[2]
	assert.Equal(t, "2025-01-01", second[col("date_ist")])
	assert.Equal(t, "5", second[col("hour_ist")])
	assert.Equal(t, "Media", second[col("TweetCategory")])
}

func TestRun_MissingRequiredColumns(t *testing.T) {
	src := writeFixture(t, "Sheet1", [][]interface{}{
		{"foo", "bar"},
		{"1", "2"},
	})
	out := filepath.Join(t.TempDir(), "cleaned.csv")

	err := run(slog.Default(), src, "Sheet1", out)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrTypeMissingColumn, apperrors.TypeOf(err))

	// No output file on fatal schema errors.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_SourceMissing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cleaned.csv")

	err := run(slog.Default(), filepath.Join(t.TempDir(), "absent.xlsx"), "", out)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrTypeSourceNotFound, apperrors.TypeOf(err))
}
