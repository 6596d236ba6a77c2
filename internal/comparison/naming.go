package comparison

import (
	"strings"
	"time"

	"gradecompare/internal/config"
)

// OutputFileName builds the report file name for a class and the newer
// snapshot date, e.g. "MTH1-Wa_Grade_Comparison_Report_30Nov2025.xlsx".
// Slashes in the class name would be read as directories, so they become
// dashes.
func OutputFileName(class string, date time.Time) string {
	class = strings.ReplaceAll(class, "/", "-")
	return class + "_Grade_Comparison_Report_" + date.Format(config.ReportNameDateLayout) + ".xlsx"
}
