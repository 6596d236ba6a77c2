package files

import (
	"path/filepath"
	"regexp"
	"strings"
)

var courseCodePattern = regexp.MustCompile(`(?i)SHEN-([A-Za-z0-9]+)_grades`)

// ExtractCourseCode returns the upper-cased course code of a gradebook
// export name such as "SHEN-MTH1Wa_grades_28Nov2025.xlsx" (MTH1WA).
func ExtractCourseCode(path string) (string, bool) {
	m := courseCodePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

// EnsureXLSX appends the .xlsx extension when name does not already end
// with it in any letter case.
func EnsureXLSX(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		return name
	}
	return name + ".xlsx"
}
