// Package exporter writes comparison reports as CSV.
//
// CSVWriter is the generic writer with UTF-8 BOM support for Excel.
// ComparisonExporter lays a comparison report out with the same columns as
// the xlsx report, grades rounded to two decimals.
package exporter
