package gradebook

import (
	"regexp"
	"time"

	apperrors "gradecompare/internal/errors"
)

var (
	// sheet names carry the export date as MM-DD-YYYY
	sheetDatePattern = regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})`)
	// file names carry it as D[D]MonYYYY, month in any case
	pathDatePattern = regexp.MustCompile(`\d{1,2}[A-Za-z]{3}\d{4}`)
)

const (
	sheetDateLayout = "1-2-2006"
	pathDateLayout  = "2Jan2006"
)

// DateFromSheetName parses the first MM-DD-YYYY token of a sheet name.
func DateFromSheetName(sheetName string) (time.Time, bool) {
	m := sheetDatePattern.FindString(sheetName)
	if m == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(sheetDateLayout, m)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateFromPath parses the first D[D]MonYYYY token of a file path. time.Parse
// matches the month abbreviation in any case ("28nov2025", "28NOV2025").
func DateFromPath(path string) (time.Time, bool) {
	m := pathDatePattern.FindString(path)
	if m == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(pathDateLayout, m)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InferDate resolves the snapshot date, preferring the sheet name and falling
// back to the file path.
func InferDate(sheetName, path string) (time.Time, error) {
	if t, ok := DateFromSheetName(sheetName); ok {
		return t, nil
	}
	if t, ok := DateFromPath(path); ok {
		return t, nil
	}
	return time.Time{}, apperrors.NewDateExtractionError(path, sheetName)
}
