// Package exporter handles serialization of enriched post tables to CSV.
// Files are written with a UTF-8 BOM so Excel round-trips them cleanly.
package exporter
