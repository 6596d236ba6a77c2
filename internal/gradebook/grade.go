package gradebook

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"gradecompare/internal/config"
)

// gradedHeaderPattern matches "Graded /20", "Graded/12", "Graded / 8" ...
var gradedHeaderPattern = regexp.MustCompile(`Graded\s*/\s*\d+`)

// CleanGrade parses a "Course grade" cell. A trailing "%" is stripped.
// It reports false for empty or non-numeric cells, which are treated as
// missing grades rather than errors.
func CleanGrade(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	return parseNumber(s)
}

// NormalizeScale rescales a single grade that looks like a 0-1 fraction.
// Values strictly between 0 and 1.5 are multiplied by 100; everything else
// is assumed to be a percentage already. The check is per value, so a column
// mixing both encodings comes out uniformly on the 0-100 scale.
func NormalizeScale(v float64) float64 {
	if v > 0 && v < config.FractionScaleLimit {
		return v * 100
	}
	return v
}

// FindGradedColumn returns the index of the first "Graded /N" header.
func FindGradedColumn(headers []string) (int, bool) {
	for i, h := range headers {
		if gradedHeaderPattern.MatchString(h) {
			return i, true
		}
	}
	return -1, false
}

// FindColumn returns the index of the header equal to name, ignoring
// surrounding whitespace.
func FindColumn(headers []string, name string) (int, bool) {
	for i, h := range headers {
		if strings.TrimSpace(h) == name {
			return i, true
		}
	}
	return -1, false
}

// parseGradedCount reads a completed-assessment count, truncating any
// fractional part the way an integer cast would.
func parseGradedCount(raw string) (int, bool) {
	v, ok := parseNumber(strings.TrimSpace(raw))
	if !ok {
		return 0, false
	}
	return int(v), true
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
