package comparison

import (
	"gradecompare/internal/config"
	"gradecompare/pkg/contracts/domain"
)

// selectMostImproved flags the most improved students.
//
// When the best change is a real gain, every row at that gain is flagged.
// Otherwise nobody really improved, so the award goes to the highest current
// grade among the rows that did not really decline. If every row declined,
// the rows with the smallest decline are flagged. rows must not be empty.
func selectMostImproved(rows []domain.ComparisonRow) {
	best := maxChange(rows)

	if best > config.TinyChange {
		flagAt(rows, best, func(r *domain.ComparisonRow) { r.MostImproved = true })
		return
	}

	var top float64
	found := false
	for _, r := range rows {
		if r.GradeChange < -config.TinyChange {
			continue
		}
		if !found || r.CurrentGrade > top {
			top = r.CurrentGrade
			found = true
		}
	}

	if found {
		for i := range rows {
			if rows[i].GradeChange >= -config.TinyChange && rows[i].CurrentGrade == top {
				rows[i].MostImproved = true
			}
		}
		return
	}

	flagAt(rows, best, func(r *domain.ComparisonRow) { r.MostImproved = true })
}

// selectBiggestDecline flags every row at the minimum change. Unlike the
// improvement rule there is no tiny-change exemption: when everyone gained,
// the smallest gain is still flagged.
func selectBiggestDecline(rows []domain.ComparisonRow) {
	worst := rows[0].GradeChange
	for _, r := range rows[1:] {
		if r.GradeChange < worst {
			worst = r.GradeChange
		}
	}
	flagAt(rows, worst, func(r *domain.ComparisonRow) { r.BiggestDecline = true })
}

func maxChange(rows []domain.ComparisonRow) float64 {
	best := rows[0].GradeChange
	for _, r := range rows[1:] {
		if r.GradeChange > best {
			best = r.GradeChange
		}
	}
	return best
}

func flagAt(rows []domain.ComparisonRow, change float64, flag func(*domain.ComparisonRow)) {
	for i := range rows {
		if rows[i].GradeChange == change {
			flag(&rows[i])
		}
	}
}
