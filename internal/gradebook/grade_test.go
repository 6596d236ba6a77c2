package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanGrade(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"85%", 85, true},
		{" 90.5 % ", 90.5, true},
		{"0.85", 0.85, true},
		{"72", 72, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"nan", 0, false},
		{"%", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := CleanGrade(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestNormalizeScale(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"fraction", 0.85, 85},
		{"one is a full fraction", 1.0, 100},
		{"just under the limit", 1.49, 149},
		{"limit itself is a percentage", 1.5, 1.5},
		{"zero unchanged", 0, 0},
		{"negative unchanged", -0.5, -0.5},
		{"percentage unchanged", 85, 85},
		{"tiny fraction", 0.001, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeScale(tt.in), 1e-9)
		})
	}
}

func TestFindGradedColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    int
		wantOK  bool
	}{
		{"standard", []string{"Student", "Class", "Username", "Course grade", "Graded /20"}, 4, true},
		{"no spaces", []string{"Graded/12"}, 0, true},
		{"spaces around slash", []string{"a", "Graded / 8"}, 1, true},
		{"no denominator", []string{"Graded"}, -1, false},
		{"absent", []string{"Student", "Course grade"}, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindGradedColumn(tt.headers)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGradedCount(t *testing.T) {
	n, ok := parseGradedCount("18")
	assert.True(t, ok)
	assert.Equal(t, 18, n)

	n, ok = parseGradedCount("18.7")
	assert.True(t, ok)
	assert.Equal(t, 18, n)

	_, ok = parseGradedCount("eighteen")
	assert.False(t, ok)
}
