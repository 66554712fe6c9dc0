package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"tweetmetrics/internal/config"
	"tweetmetrics/internal/dataprocessing"
	"tweetmetrics/internal/exporter"
	"tweetmetrics/internal/infrastructure"
)

// Fixed pipeline invocation: the raw export this tool cleans, the sheet it
// lives on, and where the flat file for downstream reporting goes.
const (
	sourcePath  = "Tweet.xlsx"
	sourceSheet = "SocialMedia (1)"
	outputPath  = "final_cleaned_data_from_original.csv"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger = logger.With(slog.String("run_id", uuid.NewString()))

	if err := run(logger, sourcePath, sourceSheet, outputPath); err != nil {
		logger.Error("Cleaning run failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully created and saved the cleaned data to '%s'\n", outputPath)
}

// run executes the Loader -> Transformer -> Writer pipeline once.
func run(logger *slog.Logger, source, sheet, output string) error {
	logger.Info("Starting tweet data cleaning",
		slog.String("source", source),
		slog.String("sheet", sheet),
		slog.String("output", output))

	table, err := dataprocessing.LoadWorkbook(source, sheet)
	if err != nil {
		return err
	}

	enriched, err := dataprocessing.Transform(table)
	if err != nil {
		return err
	}

	if err := exporter.NewTableExporter().Export(enriched, output); err != nil {
		return err
	}

	logger.Info("Cleaning run complete",
		slog.Int("rows_written", len(enriched.Rows)),
		slog.String("output", output))

	return nil
}
