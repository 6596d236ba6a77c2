package domain

import (
	"time"
)

// StudentRow is one student line of a gradebook export.
type StudentRow struct {
	Key         string    `json:"key" validate:"required"`
	Display     [2]string `json:"display"`
	CourseGrade float64   `json:"course_grade" validate:"min=0"`
	HasGrade    bool      `json:"has_grade"`
	GradedCell  string    `json:"graded_cell,omitempty"`
}

// GradeSnapshot is one point-in-time export of the gradebook.
// GradedCount is taken from the first non-missing "Graded /N" value and is
// assumed to be identical for every student in the export.
type GradeSnapshot struct {
	Path      string `json:"path" validate:"required"`
	SheetName string `json:"sheet_name"`
	// Class is the second display column of the first data row, keyed or not.
	Class        string       `json:"class"`
	Date         time.Time    `json:"date" validate:"required"`
	Headers      []string     `json:"headers"`
	GradedHeader string       `json:"graded_header"`
	GradedCount  int          `json:"graded_count" validate:"min=0"`
	Rows         []StudentRow `json:"rows" validate:"dive"`
}

// IdentityHeaders returns the headers of the two display columns and the key
// column, in sheet order. Missing headers are returned as empty strings.
func (s *GradeSnapshot) IdentityHeaders() [3]string {
	var out [3]string
	for i := 0; i < len(out) && i < len(s.Headers); i++ {
		out[i] = s.Headers[i]
	}
	return out
}

// ClassName returns the course section the export belongs to.
func (s *GradeSnapshot) ClassName() string {
	return s.Class
}
