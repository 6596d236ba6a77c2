// Package errors defines the error taxonomy of the grade comparison
// pipeline. Every failure is an *AppError whose Type names the category
// (date extraction, missing graded column, ambiguous order, timeline
// inversion, locked output, save). The exported sentinels match any error of
// the same category through errors.Is, and UserMessage renders the
// diagnostic printed at the command line.
package errors
