package gradebook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"gradecompare/internal/config"
	apperrors "gradecompare/internal/errors"
	"gradecompare/pkg/contracts/domain"
)

// Loader reads gradebook exports into snapshots.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "gradebook_loader"))}
}

// Load reads the first sheet of the workbook at path.
func Load(path string) (*domain.GradeSnapshot, error) {
	return NewLoader(nil).Load(context.Background(), path)
}

// Load reads the first sheet of the workbook at path, infers its snapshot
// date, cleans and rescales the course grades and resolves the
// completed-assessment count.
func (l *Loader) Load(ctx context.Context, path string) (*domain.GradeSnapshot, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open %s", path), err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("%s has no sheets", path), nil)
	}
	sheetName := sheets[0]

	// Raw values keep fractional grades (0.85) instead of their "85%" rendering
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheetName), err).
			WithContext("path", path)
	}

	date, err := InferDate(sheetName, path)
	if err != nil {
		return nil, err
	}

	snapshot, err := l.buildSnapshot(ctx, path, sheetName, rows)
	if err != nil {
		return nil, err
	}
	snapshot.Date = date

	l.logger.InfoContext(ctx, "Snapshot loaded",
		slog.String("path", path),
		slog.String("sheet_name", sheetName),
		slog.String("snapshot_date", date.Format("2006-01-02")),
		slog.Int("students", len(snapshot.Rows)),
		slog.Int("graded_count", snapshot.GradedCount))

	return snapshot, nil
}

func (l *Loader) buildSnapshot(ctx context.Context, path, sheetName string, rows [][]string) (*domain.GradeSnapshot, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("sheet %q in %s is empty", sheetName, path), nil)
	}
	headers := rows[0]

	if len(headers) <= config.KeyColumnIndex {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("sheet %q has %d columns, expected at least %d", sheetName, len(headers), config.KeyColumnIndex+1), nil).
			WithContext("path", path)
	}

	gradeCol, ok := FindColumn(headers, config.CourseGradeHeader)
	if !ok {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("missing %q column in %s", config.CourseGradeHeader, path), nil).
			WithContext("path", path)
	}

	gradedCol, ok := FindGradedColumn(headers)
	if !ok {
		return nil, apperrors.NewMissingGradedColumnError(path, "no header")
	}

	data := rows[1:]
	gradedCount, err := firstGradedCount(path, data, gradedCol)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.GradeSnapshot{
		Path:         path,
		SheetName:    sheetName,
		Class:        firstClass(data),
		Headers:      headers,
		GradedHeader: headers[gradedCol],
		GradedCount:  gradedCount,
	}

	seen := make(map[string]int, len(data))
	missingGrades := 0
	mismatchedCounts := 0

	for i, row := range data {
		key := strings.TrimSpace(cell(row, config.KeyColumnIndex))
		if key == "" {
			continue
		}
		if first, dup := seen[key]; dup {
			l.logger.WarnContext(ctx, "Duplicate student key ignored",
				slog.String("path", path),
				slog.String("key", key),
				slog.Int("first_row", first+2),
				slog.Int("row", i+2))
			continue
		}
		seen[key] = i

		grade, hasGrade := CleanGrade(cell(row, gradeCol))
		if hasGrade {
			grade = NormalizeScale(grade)
		} else {
			missingGrades++
		}

		gradedCell := cell(row, gradedCol)
		if n, ok := parseGradedCount(gradedCell); ok && n != gradedCount {
			mismatchedCounts++
		}

		snapshot.Rows = append(snapshot.Rows, domain.StudentRow{
			Key:         key,
			Display:     [2]string{cell(row, 0), cell(row, config.ClassColumnIndex)},
			CourseGrade: grade,
			HasGrade:    hasGrade,
			GradedCell:  gradedCell,
		})
	}

	if missingGrades > 0 {
		l.logger.DebugContext(ctx, "Rows without a parseable course grade",
			slog.String("path", path),
			slog.Int("count", missingGrades))
	}
	if mismatchedCounts > 0 {
		l.logger.WarnContext(ctx, "Graded count is not uniform across the snapshot, using the first value",
			slog.String("path", path),
			slog.String("header", snapshot.GradedHeader),
			slog.Int("graded_count", gradedCount),
			slog.Int("mismatched_rows", mismatchedCounts))
	}

	return snapshot, nil
}

// firstGradedCount returns the first non-empty value of the graded column.
// Every student in an export shares the same count, so the first value
// stands for the whole snapshot.
func firstGradedCount(path string, data [][]string, col int) (int, error) {
	for _, row := range data {
		raw := strings.TrimSpace(cell(row, col))
		if raw == "" {
			continue
		}
		n, ok := parseGradedCount(raw)
		if !ok {
			return 0, apperrors.NewParsingError(
				fmt.Sprintf("graded count %q in %s is not a number", raw, path), nil).
				WithContext("path", path)
		}
		return n, nil
	}
	return 0, apperrors.NewMissingGradedColumnError(path, "no values")
}

// firstClass reads the class from the first data row, keyed or not.
func firstClass(data [][]string) string {
	if len(data) == 0 {
		return ""
	}
	return cell(data[0], config.ClassColumnIndex)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
