package exporter

import (
	"fmt"
	"math"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	// 13.4 appears as 13.40, -0.004 as 0.00
	s := fmt.Sprintf("%.2f", f)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// formatFlag writes tag for set flags and an empty cell otherwise
func formatFlag(set bool, tag string) string {
	if set {
		return tag
	}
	return ""
}
