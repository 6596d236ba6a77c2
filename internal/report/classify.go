package report

import (
	"math"

	"gradecompare/internal/config"
	"gradecompare/pkg/contracts/domain"
)

// changeCell is how one grade change is written.
type changeCell struct {
	Value float64
	Style changeStyle
	// Zeroed is set when a tiny change is written as 0.00.
	Zeroed bool
}

// classifyChange applies the coloring rules to a row, first match wins. It
// reports false for NaN changes, which are left unstyled.
func classifyChange(row domain.ComparisonRow) (changeCell, bool) {
	change := row.GradeChange
	if math.IsNaN(change) {
		return changeCell{}, false
	}
	tiny := math.Abs(change) <= config.TinyChange

	switch {
	case row.MostImproved && tiny:
		return changeCell{Value: 0, Style: styleMostImprovedZero, Zeroed: true}, true
	case row.MostImproved:
		return changeCell{Value: change, Style: styleMostImproved}, true
	case row.BiggestDecline:
		return changeCell{Value: change, Style: styleDecline}, true
	case tiny:
		return changeCell{Value: 0, Style: styleNoChange, Zeroed: true}, true
	case change < 0:
		return changeCell{Value: change, Style: styleNegative}, true
	default:
		return changeCell{Value: change, Style: stylePositive}, true
	}
}
