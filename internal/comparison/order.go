package comparison

import (
	apperrors "gradecompare/internal/errors"
	"gradecompare/pkg/contracts/domain"
)

const logDateLayout = "01-02-2006"

// Order arranges two snapshots chronologically. The argument order does not
// matter. Snapshots sharing a date cannot be ordered, and an older snapshot
// must not report more graded assessments than the newer one.
func Order(a, b *domain.GradeSnapshot) (*domain.SnapshotPair, error) {
	if a == nil || b == nil {
		return nil, apperrors.NewAppValidationError("two snapshots are required")
	}

	var pair domain.SnapshotPair
	switch {
	case a.Date.Before(b.Date):
		pair = domain.SnapshotPair{Older: a, Newer: b}
	case b.Date.Before(a.Date):
		pair = domain.SnapshotPair{Older: b, Newer: a}
	default:
		return nil, apperrors.NewAmbiguousOrderError(a.Date.Format(logDateLayout))
	}

	if pair.Older.GradedCount > pair.Newer.GradedCount {
		return nil, apperrors.NewTimelineInversionError(pair.Older.GradedCount, pair.Newer.GradedCount)
	}

	return &pair, nil
}
