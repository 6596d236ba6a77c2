package comparison

import (
	"context"
	"log/slog"

	apperrors "gradecompare/internal/errors"
	"gradecompare/pkg/contracts/domain"
)

// Engine joins two snapshots and classifies the grade movement.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an engine. A nil logger falls back to slog.Default.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger.With(slog.String("component", "comparison_engine"))}
}

// Compare is a convenience wrapper around a default Engine.
func Compare(a, b *domain.GradeSnapshot) (*domain.ComparisonReport, error) {
	return NewEngine(nil).Compare(context.Background(), a, b)
}

// Compare orders the snapshots, joins them on the student key and flags the
// most improved and biggest decline rows. Rows follow the older snapshot's
// order. Students missing from either snapshot, or without a grade in
// either, are left out.
func (e *Engine) Compare(ctx context.Context, a, b *domain.GradeSnapshot) (*domain.ComparisonReport, error) {
	pair, err := Order(a, b)
	if err != nil {
		return nil, err
	}
	older, newer := pair.Older, pair.Newer

	e.logger.InfoContext(ctx, "Snapshots ordered",
		slog.String("older_path", older.Path),
		slog.String("older_date", older.Date.Format(logDateLayout)),
		slog.Int("older_graded_count", older.GradedCount),
		slog.String("newer_path", newer.Path),
		slog.String("newer_date", newer.Date.Format(logDateLayout)),
		slog.Int("newer_graded_count", newer.GradedCount))

	current := make(map[string]domain.StudentRow, len(newer.Rows))
	for _, r := range newer.Rows {
		if r.HasGrade {
			current[r.Key] = r
		}
	}

	rows := make([]domain.ComparisonRow, 0, len(older.Rows))
	skipped := 0
	for _, prev := range older.Rows {
		cur, ok := current[prev.Key]
		if !ok || !prev.HasGrade {
			skipped++
			continue
		}
		rows = append(rows, domain.ComparisonRow{
			Key:                prev.Key,
			Display:            prev.Display,
			PreviousGrade:      prev.CourseGrade,
			CurrentGrade:       cur.CourseGrade,
			CurrentGradedCount: newer.GradedCount,
			GradeChange:        cur.CourseGrade - prev.CourseGrade,
		})
	}

	if len(rows) == 0 {
		return nil, apperrors.NewAppValidationError("the snapshots have no graded students in common").
			WithContext("older_path", older.Path).
			WithContext("newer_path", newer.Path)
	}

	selectMostImproved(rows)
	selectBiggestDecline(rows)

	report := &domain.ComparisonReport{
		ClassName:       newer.ClassName(),
		OutputName:      OutputFileName(newer.ClassName(), newer.Date),
		OlderDate:       older.Date,
		NewerDate:       newer.Date,
		IdentityHeaders: older.IdentityHeaders(),
		Rows:            rows,
	}

	e.logger.InfoContext(ctx, "Comparison complete",
		slog.String("class", report.ClassName),
		slog.Int("students", len(rows)),
		slog.Int("skipped", skipped),
		slog.Any("most_improved", report.MostImproved()),
		slog.Any("biggest_decline", report.BiggestDecline()))

	return report, nil
}
