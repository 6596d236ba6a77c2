package report

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gradecompare/internal/config"
	apperrors "gradecompare/internal/errors"
	"gradecompare/internal/shared/testutil"
	"gradecompare/pkg/contracts/domain"
)

func sampleReport() *domain.ComparisonReport {
	row := func(key string, prev, cur float64, improved, decline bool) domain.ComparisonRow {
		return domain.ComparisonRow{
			Key:                key,
			Display:            [2]string{"Student " + key, "MTH1/Wa"},
			PreviousGrade:      prev,
			CurrentGrade:       cur,
			CurrentGradedCount: 20,
			GradeChange:        cur - prev,
			MostImproved:       improved,
			BiggestDecline:     decline,
		}
	}

	return &domain.ComparisonReport{
		ClassName:       "MTH1/Wa",
		OutputName:      "MTH1-Wa_Grade_Comparison_Report_30Nov2025.xlsx",
		OlderDate:       time.Date(2025, time.November, 28, 0, 0, 0, 0, time.UTC),
		NewerDate:       time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		IdentityHeaders: [3]string{"Student", "Class", "Username"},
		Rows: []domain.ComparisonRow{
			row("ana", 85, 90, true, false),
			row("ben", 70, 60, false, true),
			row("cy", 80, 80.005, false, false),
			row("dee", 75, 72, false, false),
			row("eli", 60, 62, false, false),
		},
	}
}

func writeSample(t *testing.T, report *domain.ComparisonReport) (*excelize.File, string) {
	t.Helper()

	logger, _ := testutil.NewTestLogger(t)
	path, err := NewRenderer(logger).Write(context.Background(), report, t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, path
}

func fillOf(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()

	id, err := f.GetCellStyle(config.ReportSheetName, ref)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	if len(style.Fill.Color) == 0 {
		return ""
	}
	return strings.ToUpper(style.Fill.Color[0])
}

func TestRendererWrite(t *testing.T) {
	report := sampleReport()
	f, path := writeSample(t, report)

	assert.Equal(t, report.OutputName, filepath.Base(path))
	assert.Equal(t, []string{config.ReportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(config.ReportSheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, []string{
		"Student", "Class", "Username",
		"Current Graded Assessments", "Previous Course Grade (%)", "Current Course Grade (%)",
		"Grade Change (%)", "Most Improved Student(s)", "Biggest Decline",
	}, rows[0])

	assert.Equal(t, []string{"Student ana", "MTH1/Wa", "ana", "20", "85", "90", "5", config.MostImprovedTag}, rows[1][:8])
	assert.Equal(t, config.BiggestDeclineTag, rows[2][8])
	assert.Equal(t, "0", rows[3][6], "tiny change is written as zero")
}

func TestRendererGradeChangeColors(t *testing.T) {
	f, _ := writeSample(t, sampleReport())

	tests := []struct {
		ref   string
		color string
	}{
		{"G2", colorMostImproved},
		{"G3", colorDecline},
		{"G4", colorNoChange},
		{"G5", colorNegative},
		{"G6", colorPositive},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.True(t, strings.HasSuffix(fillOf(t, f, tt.ref), tt.color),
				"%s: want %s, got %s", tt.ref, tt.color, fillOf(t, f, tt.ref))
		})
	}

	assert.Empty(t, fillOf(t, f, "F2"), "only the change column is filled")

	shown, err := f.GetCellValue(config.ReportSheetName, "G4")
	require.NoError(t, err)
	assert.Equal(t, "0.00", shown)
}

func TestRendererTinyMostImprovedStaysGreen(t *testing.T) {
	report := sampleReport()
	report.Rows = report.Rows[2:3]
	report.Rows[0].MostImproved = true
	report.Rows[0].BiggestDecline = true

	f, _ := writeSample(t, report)

	assert.True(t, strings.HasSuffix(fillOf(t, f, "G2"), colorMostImproved))
	shown, err := f.GetCellValue(config.ReportSheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, "0.00", shown)
}

func TestRendererLayout(t *testing.T) {
	report := sampleReport()
	f, _ := writeSample(t, report)
	sheet := config.ReportSheetName

	width, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(len("Student ana")+widthPadding), width)

	width, err = f.GetColWidth(sheet, "D")
	require.NoError(t, err)
	assert.Equal(t, float64(len(HeaderGradedAssessments)+widthPadding), width)

	// emoji count as one character each
	width, err = f.GetColWidth(sheet, "H")
	require.NoError(t, err)
	assert.Equal(t, float64(len([]rune(HeaderMostImproved))+widthPadding), width)

	for _, ref := range []string{"D1", "E3", "F6", "H2", "I1", "G5"} {
		id, err := f.GetCellStyle(sheet, ref)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		require.NotNil(t, style.Alignment, ref)
		assert.Equal(t, "center", style.Alignment.Horizontal, ref)
		assert.Equal(t, "center", style.Alignment.Vertical, ref)
	}

	id, err := f.GetCellStyle(sheet, "A2")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	if style.Alignment != nil {
		assert.NotEqual(t, "center", style.Alignment.Horizontal)
	}
}

func TestRendererSkipsNaNChange(t *testing.T) {
	report := sampleReport()
	report.Rows[4].GradeChange = math.NaN()

	f, _ := writeSample(t, report)
	assert.False(t, strings.HasSuffix(fillOf(t, f, "G6"), colorPositive))
}

func TestRendererSaveError(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()
	// a directory in the way of the report file
	require.NoError(t, os.Mkdir(filepath.Join(dir, report.OutputName), 0o755))

	_, err := NewRenderer(nil).Write(context.Background(), report, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSave))
	assert.False(t, errors.Is(err, apperrors.ErrOutputLocked))
}

func TestRendererMissingDirectory(t *testing.T) {
	_, err := NewRenderer(nil).Write(context.Background(), sampleReport(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSave))
}

func TestRendererNilReport(t *testing.T) {
	_, err := NewRenderer(nil).Write(context.Background(), nil, t.TempDir())
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestClassifySaveError(t *testing.T) {
	locked := &fs.PathError{Op: "open", Path: "report.xlsx", Err: fs.ErrPermission}
	err := classifySaveError("report.xlsx", locked)
	assert.True(t, errors.Is(err, apperrors.ErrOutputLocked))
	assert.Contains(t, apperrors.UserMessage(err), "CLOSED")

	err = classifySaveError("report.xlsx", errors.New("disk full"))
	assert.True(t, errors.Is(err, apperrors.ErrSave))
	assert.False(t, isLockViolation(errors.New("disk full")))
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		name   string
		row    domain.ComparisonRow
		style  changeStyle
		value  float64
		zeroed bool
	}{
		{"improved", domain.ComparisonRow{GradeChange: 5, MostImproved: true}, styleMostImproved, 5, false},
		{"improved tiny", domain.ComparisonRow{GradeChange: -0.01, MostImproved: true}, styleMostImprovedZero, 0, true},
		{"improved beats decline", domain.ComparisonRow{GradeChange: 2, MostImproved: true, BiggestDecline: true}, styleMostImproved, 2, false},
		{"decline keeps tiny value", domain.ComparisonRow{GradeChange: 0.005, BiggestDecline: true}, styleDecline, 0.005, false},
		{"tiny", domain.ComparisonRow{GradeChange: 0.01}, styleNoChange, 0, true},
		{"negative", domain.ComparisonRow{GradeChange: -0.02}, styleNegative, -0.02, false},
		{"positive", domain.ComparisonRow{GradeChange: 0.02}, stylePositive, 0.02, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := classifyChange(tt.row)
			require.True(t, ok)
			assert.Equal(t, tt.style, cell.Style)
			assert.InDelta(t, tt.value, cell.Value, 1e-12)
			assert.Equal(t, tt.zeroed, cell.Zeroed)
		})
	}

	_, ok := classifyChange(domain.ComparisonRow{GradeChange: math.NaN()})
	assert.False(t, ok)
}
