package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Gradebook describes a single-sheet gradebook export to write for a test.
type Gradebook struct {
	// SheetName defaults to "Sheet1"
	SheetName string
	Headers   []string
	Rows      [][]interface{}
}

// GradebookHeaders returns the usual export header row with a "Graded /N"
// column for total assessments.
func GradebookHeaders(total int) []string {
	return []string{"Student", "Class", "Username", "Course grade", fmt.Sprintf("Graded /%d", total)}
}

// Student builds one data row matching GradebookHeaders.
func Student(name, class, key string, grade, graded interface{}) []interface{} {
	return []interface{}{name, class, key, grade, graded}
}

// WriteGradebook saves gb as dir/fileName and returns the full path.
func WriteGradebook(t *testing.T, dir, fileName string, gb Gradebook) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := gb.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("failed to name sheet %q: %v", sheet, err)
	}

	if len(gb.Headers) > 0 {
		headers := make([]interface{}, len(gb.Headers))
		for i, h := range gb.Headers {
			headers[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			t.Fatalf("failed to write headers: %v", err)
		}
	}

	for i, row := range gb.Rows {
		r := row
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &r); err != nil {
			t.Fatalf("failed to write row %d: %v", i+2, err)
		}
	}

	path := filepath.Join(dir, fileName)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
	return path
}
