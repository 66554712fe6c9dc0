package dataprocessing

import (
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "tweetmetrics/internal/errors"
	"tweetmetrics/pkg/contracts/domain"
)

// LoadWorkbook reads the spreadsheet at path and returns its contents as a
// RawTable. The first row of the selected sheet is the header; every later
// row becomes one RawRecord keyed by header name. When sheet is empty the
// first sheet in the workbook is used.
func LoadWorkbook(path, sheet string) (*domain.RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewSourceNotFoundError(path, err)
		}
		return nil, apperrors.NewSourceUnreadableError(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewSourceUnreadableError(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewSourceUnreadableError(path, nil).WithContext("reason", "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewSourceUnreadableError(path, err).WithContext("sheet", sheet)
	}

	slog.Info("Loaded workbook",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("total_rows", len(rows)))

	table := &domain.RawTable{}
	if len(rows) == 0 {
		return table, nil
	}

	// Header row: blank header cells are skipped so ragged trailing
	// columns do not produce unnamed fields.
	headers := make(map[int]string)
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		headers[i] = name
		table.Columns = append(table.Columns, name)
	}

	for _, row := range rows[1:] {
		rec := domain.RawRecord{}
		for i, cell := range row {
			name, ok := headers[i]
			if !ok {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			rec[name] = cell
		}
		table.Rows = append(table.Rows, rec)
	}

	slog.Info("Workbook parsed",
		slog.Int("columns", len(table.Columns)),
		slog.Int("data_rows", len(table.Rows)))

	return table, nil
}
