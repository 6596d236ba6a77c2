package gradebook

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gradecompare/internal/errors"
	"gradecompare/internal/shared/testutil"
)

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteGradebook(t, dir, "SHEN-MTH1Wa_grades_28Nov2025.xlsx", testutil.Gradebook{
		Headers: testutil.GradebookHeaders(20),
		Rows: [][]interface{}{
			testutil.Student("Ana Lima", "MTH1/Wa", "ana", "85%", 18),
			testutil.Student("Ben Ode", "MTH1/Wa", "ben", 0.9, 18),
			testutil.Student("Cy Rao", "MTH1/Wa", "cy", "n/a", 18),
			testutil.Student("Dee Park", "MTH1/Wa", "dee", 72.5, 18),
		},
	})

	logger, _ := testutil.NewTestLogger(t)
	snap, err := NewLoader(logger).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, snap.Path)
	assert.Equal(t, "Sheet1", snap.SheetName)
	assert.True(t, day(2025, time.November, 28).Equal(snap.Date))
	assert.Equal(t, "Graded /20", snap.GradedHeader)
	assert.Equal(t, 18, snap.GradedCount)
	assert.Equal(t, [3]string{"Student", "Class", "Username"}, snap.IdentityHeaders())
	assert.Equal(t, "MTH1/Wa", snap.ClassName())

	require.Len(t, snap.Rows, 4)

	ana := snap.Rows[0]
	assert.Equal(t, "ana", ana.Key)
	assert.True(t, ana.HasGrade)
	assert.InDelta(t, 85.0, ana.CourseGrade, 1e-9)
	assert.Equal(t, [2]string{"Ana Lima", "MTH1/Wa"}, ana.Display)

	ben := snap.Rows[1]
	assert.Equal(t, "ben", ben.Key)
	assert.InDelta(t, 90.0, ben.CourseGrade, 1e-9, "fractional grades are rescaled")

	cy := snap.Rows[2]
	assert.Equal(t, "cy", cy.Key)
	assert.False(t, cy.HasGrade)

	dee := snap.Rows[3]
	assert.Equal(t, "dee", dee.Key)
	assert.InDelta(t, 72.5, dee.CourseGrade, 1e-9)
}

func TestLoaderSheetNameDatePrecedence(t *testing.T) {
	path := testutil.WriteGradebook(t, t.TempDir(), "SHEN-MTH1Wa_grades_28Nov2025.xlsx", testutil.Gradebook{
		SheetName: "Grades 12-01-2025",
		Headers:   testutil.GradebookHeaders(20),
		Rows: [][]interface{}{
			testutil.Student("Ana Lima", "MTH1/Wa", "ana", 80, 19),
		},
	})

	snap, err := Load(path)
	require.NoError(t, err)
	assert.True(t, day(2025, time.December, 1).Equal(snap.Date))
	assert.Equal(t, "Grades 12-01-2025", snap.SheetName)
}

func TestLoaderFailures(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		gb       testutil.Gradebook
		wantErr  error
	}{
		{
			name:     "no graded header",
			fileName: "SHEN-MTH1Wa_grades_28Nov2025.xlsx",
			gb: testutil.Gradebook{
				Headers: []string{"Student", "Class", "Username", "Course grade"},
				Rows:    [][]interface{}{{"Ana", "MTH1/Wa", "ana", 80}},
			},
			wantErr: apperrors.ErrMissingGradedColumn,
		},
		{
			name:     "graded header without values",
			fileName: "SHEN-MTH1Wa_grades_28Nov2025.xlsx",
			gb: testutil.Gradebook{
				Headers: testutil.GradebookHeaders(20),
				Rows:    [][]interface{}{{"Ana", "MTH1/Wa", "ana", 80}},
			},
			wantErr: apperrors.ErrMissingGradedColumn,
		},
		{
			name:     "non-numeric graded count",
			fileName: "SHEN-MTH1Wa_grades_28Nov2025.xlsx",
			gb: testutil.Gradebook{
				Headers: testutil.GradebookHeaders(20),
				Rows:    [][]interface{}{testutil.Student("Ana", "MTH1/Wa", "ana", 80, "most")},
			},
			wantErr: apperrors.ErrParsing,
		},
		{
			name:     "no course grade column",
			fileName: "SHEN-MTH1Wa_grades_28Nov2025.xlsx",
			gb: testutil.Gradebook{
				Headers: []string{"Student", "Class", "Username", "Total", "Graded /20"},
				Rows:    [][]interface{}{{"Ana", "MTH1/Wa", "ana", 80, 18}},
			},
			wantErr: apperrors.ErrParsing,
		},
		{
			name:     "too few columns",
			fileName: "SHEN-MTH1Wa_grades_28Nov2025.xlsx",
			gb: testutil.Gradebook{
				Headers: []string{"Student", "Course grade"},
				Rows:    [][]interface{}{{"Ana", 80}},
			},
			wantErr: apperrors.ErrParsing,
		},
		{
			name:     "no date anywhere",
			fileName: "grades.xlsx",
			gb: testutil.Gradebook{
				Headers: testutil.GradebookHeaders(20),
				Rows:    [][]interface{}{testutil.Student("Ana", "MTH1/Wa", "ana", 80, 18)},
			},
			wantErr: apperrors.ErrDateExtraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteGradebook(t, t.TempDir(), tt.fileName, tt.gb)

			snap, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, snap)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "SHEN-MTH1Wa_grades_28Nov2025.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrParsing))
}

func TestLoaderDuplicateAndEmptyKeys(t *testing.T) {
	path := testutil.WriteGradebook(t, t.TempDir(), "SHEN-MTH1Wa_grades_28Nov2025.xlsx", testutil.Gradebook{
		Headers: testutil.GradebookHeaders(20),
		Rows: [][]interface{}{
			testutil.Student("Ana Lima", "MTH1/Wa", "ana", 80, 18),
			testutil.Student("Nobody", "MTH1/Wa", "", 50, 18),
			testutil.Student("Ana Again", "MTH1/Wa", "ana", 10, 18),
		},
	})

	logger, handler := testutil.NewTestLogger(t)
	snap, err := NewLoader(logger).Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "Ana Lima", snap.Rows[0].Display[0])
	assert.InDelta(t, 80.0, snap.Rows[0].CourseGrade, 1e-9)
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Duplicate student key ignored")
}

func TestLoaderClassFromUnkeyedFirstRow(t *testing.T) {
	path := testutil.WriteGradebook(t, t.TempDir(), "SHEN-MTH1Wa_grades_30Nov2025.xlsx", testutil.Gradebook{
		Headers: testutil.GradebookHeaders(20),
		Rows: [][]interface{}{
			testutil.Student("Points", "MTH1/Wa", "", "", 20),
			testutil.Student("Ana Lima", "Other/Section", "ana", 80, 20),
		},
	})

	snap, err := Load(path)
	require.NoError(t, err)

	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "ana", snap.Rows[0].Key)
	assert.Equal(t, "MTH1/Wa", snap.ClassName())
}

func TestLoaderNonUniformGradedCount(t *testing.T) {
	path := testutil.WriteGradebook(t, t.TempDir(), "SHEN-MTH1Wa_grades_28Nov2025.xlsx", testutil.Gradebook{
		Headers: testutil.GradebookHeaders(20),
		Rows: [][]interface{}{
			testutil.Student("Ana Lima", "MTH1/Wa", "ana", 80, ""),
			testutil.Student("Ben Ode", "MTH1/Wa", "ben", 70, 17),
			testutil.Student("Cy Rao", "MTH1/Wa", "cy", 60, 18),
		},
	})

	logger, handler := testutil.NewTestLogger(t)
	snap, err := NewLoader(logger).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 17, snap.GradedCount, "first non-empty value stands for the snapshot")
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Graded count is not uniform")

	for _, r := range handler.GetRecordsByLevel(slog.LevelWarn) {
		if r.Message == "Graded count is not uniform across the snapshot, using the first value" {
			assert.EqualValues(t, 1, r.Attrs["mismatched_rows"])
		}
	}
}
