package exporter

import (
	apperrors "tweetmetrics/internal/errors"
	"tweetmetrics/pkg/contracts/domain"
)

// TableExporter writes enriched post tables to disk as flat CSV files.
type TableExporter struct {
	csvWriter *CSVWriter
}

// NewTableExporter creates a new table exporter
func NewTableExporter() *TableExporter {
	return &TableExporter{
		csvWriter: NewCSVWriter(),
	}
}

// Export serializes the table to outputPath: one header row (original
// columns then derived columns), one data row per record.
func (e *TableExporter) Export(table *domain.EnrichedTable, outputPath string) error {
	if err := e.csvWriter.WriteSimpleCSV(outputPath, Headers(table), Records(table)); err != nil {
		return apperrors.NewExportError("failed to write enriched table", err).
			WithContext("path", outputPath)
	}
	return nil
}
