package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Fill colors for the grade change column.
const (
	colorMostImproved = "90EE90"
	colorDecline      = "D8BFD8"
	colorNoChange     = "FFFFCC"
	colorNegative     = "F08080"
	colorPositive     = "E0FFFF"
)

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

type changeStyle int

const (
	styleMostImproved changeStyle = iota
	styleMostImprovedZero
	styleDecline
	styleNoChange
	styleNegative
	stylePositive
)

// styleSet holds the style ids registered in one workbook.
type styleSet struct {
	centered int
	change   map[changeStyle]int
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

func filled(color string, numFmt int) *excelize.Style {
	return &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: centered(),
		NumFmt:    numFmt,
	}
}

func registerStyles(f *excelize.File) (*styleSet, error) {
	set := &styleSet{change: make(map[changeStyle]int)}

	id, err := f.NewStyle(&excelize.Style{Alignment: centered()})
	if err != nil {
		return nil, fmt.Errorf("failed to create centered style: %w", err)
	}
	set.centered = id

	defs := map[changeStyle]*excelize.Style{
		styleMostImproved:     filled(colorMostImproved, 0),
		styleMostImprovedZero: filled(colorMostImproved, numFmtTwoDecimals),
		styleDecline:          filled(colorDecline, 0),
		styleNoChange:         filled(colorNoChange, numFmtTwoDecimals),
		styleNegative:         filled(colorNegative, 0),
		stylePositive:         filled(colorPositive, 0),
	}
	for key, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			return nil, fmt.Errorf("failed to create fill style %s: %w", def.Fill.Color[0], err)
		}
		set.change[key] = id
	}

	return set, nil
}
