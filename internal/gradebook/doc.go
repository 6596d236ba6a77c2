// Package gradebook loads gradebook exports into comparable snapshots.
//
// A gradebook export is an xlsx workbook whose first sheet carries two
// display columns, the student key in the third column, a "Course grade"
// column and a "Graded /N" completed-assessment count. The snapshot date is
// taken from an MM-DD-YYYY stamp in the sheet name or, failing that, from a
// DDMonYYYY stamp in the file name.
package gradebook
