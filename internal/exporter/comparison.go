package exporter

import (
	"log/slog"
	"math"
	"strings"

	"gradecompare/internal/config"
	"gradecompare/pkg/contracts/domain"
)

// ComparisonExporter writes a comparison report as a CSV twin of the xlsx
// report.
type ComparisonExporter struct {
	writer *CSVWriter
}

// NewComparisonExporter creates an exporter writing into dir.
func NewComparisonExporter(dir string, logger *slog.Logger) *ComparisonExporter {
	return &ComparisonExporter{writer: NewCSVWriter(dir, logger)}
}

// CSVName returns the CSV file name matching an xlsx report name.
func CSVName(outputName string) string {
	return strings.TrimSuffix(outputName, ".xlsx") + ".csv"
}

// Export writes the report and returns the path of the CSV file. headers is
// the full report header row.
func (e *ComparisonExporter) Export(report *domain.ComparisonReport, headers []string) (string, error) {
	records := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		records = append(records, []string{
			row.Display[0],
			row.Display[1],
			row.Key,
			formatInt(row.CurrentGradedCount),
			formatFloat(row.PreviousGrade),
			formatFloat(row.CurrentGrade),
			formatFloat(displayChange(row)),
			formatFlag(row.MostImproved, config.MostImprovedTag),
			formatFlag(row.BiggestDecline, config.BiggestDeclineTag),
		})
	}

	return e.writer.WriteSimpleCSV(CSVName(report.OutputName), headers, records)
}

// displayChange zeroes tiny changes the way the xlsx report shows them.
// A tiny change on a biggest decline row that is not also most improved
// keeps its value.
func displayChange(row domain.ComparisonRow) float64 {
	if math.IsNaN(row.GradeChange) || math.Abs(row.GradeChange) > config.TinyChange {
		return row.GradeChange
	}
	if row.BiggestDecline && !row.MostImproved {
		return row.GradeChange
	}
	return 0
}
