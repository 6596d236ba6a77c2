// Package shared holds helpers used across the gradecompare packages that
// belong to no single stage of the pipeline.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//   - Gradebook workbook fixtures written with excelize
//   - A buffered slog handler for asserting on log output
//
// Example usage:
//
//	func TestLoad(t *testing.T) {
//	    path := testutil.WriteGradebook(t, t.TempDir(), "SHEN-MTH1Wa_grades_28Nov2025.xlsx",
//	        testutil.Gradebook{
//	            Headers: testutil.GradebookHeaders(20),
//	            Rows:    [][]interface{}{testutil.Student("Ali", "MTH1Wa", "ali01", "85%", 18)},
//	        })
//	    ...
//	}
package shared
