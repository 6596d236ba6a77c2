// Package report renders a comparison report as a styled xlsx workbook.
//
// The grade change column is colored by the first matching rule: most
// improved (light green), biggest decline (thistle), no real change (light
// yellow), decline (light coral) and gain (light cyan). Tiny changes are
// written as 0.00.
package report
