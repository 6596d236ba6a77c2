package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"gradecompare/internal/config"
	apperrors "gradecompare/internal/errors"
	"gradecompare/pkg/contracts/domain"
)

// Report column headers after the three identity columns.
const (
	HeaderGradedAssessments = "Current Graded Assessments"
	HeaderPreviousGrade     = "Previous Course Grade (%)"
	HeaderCurrentGrade      = "Current Course Grade (%)"
	HeaderGradeChange       = "Grade Change (%)"
	HeaderMostImproved      = "Most Improved Student(s)"
	HeaderBiggestDecline    = "Biggest Decline"
)

const (
	// firstCenteredColumn is the 1-based column of HeaderGradedAssessments.
	firstCenteredColumn = 4
	gradeChangeColumn   = 7
	columnCount         = 9
	widthPadding        = 2
)

// Renderer writes comparison reports as styled xlsx workbooks.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger falls back to slog.Default.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger.With(slog.String("component", "report_renderer"))}
}

// Headers returns the full header row of a report.
func Headers(r *domain.ComparisonReport) []string {
	return []string{
		r.IdentityHeaders[0], r.IdentityHeaders[1], r.IdentityHeaders[2],
		HeaderGradedAssessments, HeaderPreviousGrade, HeaderCurrentGrade,
		HeaderGradeChange, HeaderMostImproved, HeaderBiggestDecline,
	}
}

// Write saves the report as dir/report.OutputName and returns the path.
// A file held open by another program yields an OutputLocked error, any
// other failure a Save error. Write never panics.
func (r *Renderer) Write(ctx context.Context, report *domain.ComparisonReport, dir string) (path string, err error) {
	if report == nil {
		return "", apperrors.NewAppValidationError("no report to write")
	}
	path = filepath.Join(dir, report.OutputName)

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "Spreadsheet library panicked while writing report",
				slog.String("path", path),
				slog.Any("panic", rec))
			err = apperrors.NewSaveError(path, fmt.Errorf("panic: %v", rec))
			path = ""
		}
	}()

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.WarnContext(ctx, "Failed to close report workbook",
				slog.String("path", path),
				slog.String("error", cerr.Error()))
		}
	}()

	if err := r.fill(f, report); err != nil {
		return "", apperrors.NewSaveError(path, err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", classifySaveError(path, err)
	}

	r.logger.InfoContext(ctx, "Report saved",
		slog.String("path", path),
		slog.Int("rows", len(report.Rows)))

	return path, nil
}

func (r *Renderer) fill(f *excelize.File, report *domain.ComparisonReport) error {
	sheet := config.ReportSheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := registerStyles(f)
	if err != nil {
		return err
	}

	headers := Headers(report)
	widths := make([]int, columnCount)

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
		widths[i] = utf8.RuneCountInString(h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range report.Rows {
		rowNum := i + 2
		values, texts := rowCells(row)
		for col, text := range texts {
			if n := utf8.RuneCountInString(text); n > widths[col] {
				widths[col] = n
			}
		}

		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
	}

	lastRow := len(report.Rows) + 1
	from, _ := excelize.CoordinatesToCellName(firstCenteredColumn, 1)
	to, _ := excelize.CoordinatesToCellName(columnCount, lastRow)
	if err := f.SetCellStyle(sheet, from, to, styles.centered); err != nil {
		return fmt.Errorf("failed to center columns: %w", err)
	}

	for i, row := range report.Rows {
		cell, ok := classifyChange(row)
		if !ok {
			continue
		}
		ref, _ := excelize.CoordinatesToCellName(gradeChangeColumn, i+2)
		if err := f.SetCellStyle(sheet, ref, ref, styles.change[cell.Style]); err != nil {
			return fmt.Errorf("failed to style %s: %w", ref, err)
		}
	}

	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, float64(w+widthPadding)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	return nil
}

// rowCells returns the values to write for one row and the text each value
// renders as.
func rowCells(row domain.ComparisonRow) ([]interface{}, []string) {
	var improved, decline string
	if row.MostImproved {
		improved = config.MostImprovedTag
	}
	if row.BiggestDecline {
		decline = config.BiggestDeclineTag
	}

	var change interface{} = row.GradeChange
	changeText := formatNumber(row.GradeChange)
	if cell, ok := classifyChange(row); ok {
		change = cell.Value
		if cell.Zeroed {
			changeText = "0.00"
		}
	} else {
		change = ""
		changeText = ""
	}

	values := []interface{}{
		row.Display[0], row.Display[1], row.Key,
		row.CurrentGradedCount, row.PreviousGrade, row.CurrentGrade,
		change, improved, decline,
	}
	texts := []string{
		row.Display[0], row.Display[1], row.Key,
		strconv.Itoa(row.CurrentGradedCount), formatNumber(row.PreviousGrade), formatNumber(row.CurrentGrade),
		changeText, improved, decline,
	}
	return values, texts
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func classifySaveError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) || isLockViolation(err) {
		return apperrors.NewOutputLockedError(path, err)
	}
	return apperrors.NewSaveError(path, err)
}
