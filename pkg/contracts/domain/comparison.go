package domain

import (
	"time"
)

// SnapshotPair is a chronologically ordered pair of snapshots.
// Older.Date is strictly before Newer.Date and Older.GradedCount never
// exceeds Newer.GradedCount.
type SnapshotPair struct {
	Older *GradeSnapshot `json:"older" validate:"required"`
	Newer *GradeSnapshot `json:"newer" validate:"required"`
}

// ComparisonRow holds the grade movement of one student present in both
// snapshots.
type ComparisonRow struct {
	Key                string    `json:"key"`
	Display            [2]string `json:"display"`
	PreviousGrade      float64   `json:"previous_grade"`
	CurrentGrade       float64   `json:"current_grade"`
	CurrentGradedCount int       `json:"current_graded_count"`
	GradeChange        float64   `json:"grade_change"`
	MostImproved       bool      `json:"most_improved"`
	BiggestDecline     bool      `json:"biggest_decline"`
}

// ComparisonReport is the result of one comparison run. It is built once by
// the comparison engine and consumed once by the report renderer.
type ComparisonReport struct {
	ClassName       string          `json:"class_name"`
	OutputName      string          `json:"output_name"`
	OlderDate       time.Time       `json:"older_date"`
	NewerDate       time.Time       `json:"newer_date"`
	IdentityHeaders [3]string       `json:"identity_headers"`
	Rows            []ComparisonRow `json:"rows"`
}

// MostImproved returns the keys of every row flagged as most improved.
func (r *ComparisonReport) MostImproved() []string {
	var keys []string
	for _, row := range r.Rows {
		if row.MostImproved {
			keys = append(keys, row.Key)
		}
	}
	return keys
}

// BiggestDecline returns the keys of every row flagged as biggest decline.
func (r *ComparisonReport) BiggestDecline() []string {
	var keys []string
	for _, row := range r.Rows {
		if row.BiggestDecline {
			keys = append(keys, row.Key)
		}
	}
	return keys
}
