// Package dataprocessing turns a raw social-media metrics workbook into an
// enriched flat table ready for CSV export.
//
// The package has two entry points:
//
// 1. LoadWorkbook: reads an .xlsx export and materializes it as a RawTable
// 2. Transform: normalizes column names, filters incomplete rows, converts
// timestamps to IST and derives the per-post analytic columns
//
// Basic usage:
//
//	table, err := dataprocessing.LoadWorkbook("Tweet.xlsx", "SocialMedia (1)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enriched, err := dataprocessing.Transform(table)
//
// Transform is a single synchronous pass over the in-memory table; the
// caller owns the returned EnrichedTable.
package dataprocessing
